package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// BackendMode selects where the data layer gets its data from.
type BackendMode string

const (
	BackendMock BackendMode = "mock"
	BackendLive BackendMode = "live"
)

// ParseBackendMode accepts "mock" or "live" (case-insensitive). Empty means mock.
func ParseBackendMode(s string) (BackendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BackendMock):
		return BackendMock, nil
	case string(BackendLive):
		return BackendLive, nil
	default:
		return "", fmt.Errorf("unknown backend mode %q, use mock or live", s)
	}
}

// ID strategies for records created in mock mode.
const (
	IDStrategySequence = "sequence"
	IDStrategyUUID     = "uuid"
)

// ParseIDStrategy accepts "sequence" or "uuid" (case-insensitive). Empty means sequence.
func ParseIDStrategy(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", IDStrategySequence:
		return IDStrategySequence, nil
	case IDStrategyUUID:
		return IDStrategyUUID, nil
	default:
		return "", fmt.Errorf("unknown id strategy %q, use sequence or uuid", s)
	}
}

func (m BackendMode) IsMock() bool { return m == BackendMock }
func (m BackendMode) IsLive() bool { return m == BackendLive }

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Mock    MockConfig
	Session SessionConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type BackendConfig struct {
	Mode    BackendMode
	BaseURL string
	Timeout time.Duration
}

type MockConfig struct {
	Latency          time.Duration
	FailureMode      string
	FailureRate      float64
	FailureEvery     int
	IDStrategy       string
	DerivedDashboard bool
}

type SessionConfig struct {
	Store string
	File  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_MODE", string(BackendMock))
	v.SetDefault("BACKEND_URL", "http://localhost:8080/api")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("MOCK_LATENCY", "500ms")
	v.SetDefault("MOCK_FAILURE_MODE", "none")
	v.SetDefault("MOCK_FAILURE_RATE", 0.05)
	v.SetDefault("MOCK_FAILURE_EVERY", 10)
	v.SetDefault("MOCK_ID_STRATEGY", "sequence")
	v.SetDefault("MOCK_DERIVED_DASHBOARD", false)
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_FILE", ".hospital-session.json")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	mode, err := ParseBackendMode(v.GetString("BACKEND_MODE"))
	if err != nil {
		return nil, err
	}

	timeout, err := parseDuration(v, "BACKEND_TIMEOUT")
	if err != nil {
		return nil, err
	}

	latency, err := parseDuration(v, "MOCK_LATENCY")
	if err != nil {
		return nil, err
	}

	accessExpiry, err := parseDuration(v, "JWT_ACCESS_EXPIRY")
	if err != nil {
		return nil, err
	}

	idStrategy, err := ParseIDStrategy(v.GetString("MOCK_ID_STRATEGY"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Backend: BackendConfig{
			Mode:    mode,
			BaseURL: v.GetString("BACKEND_URL"),
			Timeout: timeout,
		},
		Mock: MockConfig{
			Latency:          latency,
			FailureMode:      strings.ToLower(v.GetString("MOCK_FAILURE_MODE")),
			FailureRate:      v.GetFloat64("MOCK_FAILURE_RATE"),
			FailureEvery:     v.GetInt("MOCK_FAILURE_EVERY"),
			IDStrategy:       idStrategy,
			DerivedDashboard: v.GetBool("MOCK_DERIVED_DASHBOARD"),
		},
		Session: SessionConfig{
			Store: strings.ToLower(v.GetString("SESSION_STORE")),
			File:  v.GetString("SESSION_FILE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	return config, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, raw)
	}
	return d, nil
}
