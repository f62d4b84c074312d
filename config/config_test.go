package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackendMode(t *testing.T) {
	cases := map[string]BackendMode{
		"":      BackendMock,
		"mock":  BackendMock,
		"MOCK":  BackendMock,
		"live":  BackendLive,
		" Live": BackendLive,
	}
	for in, want := range cases {
		got, err := ParseBackendMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBackendMode("https://api.example.com")
	assert.Error(t, err)
}

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.Backend.Mode.IsMock())
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Mock.Latency)
	assert.Equal(t, "none", cfg.Mock.FailureMode)
	assert.Equal(t, "sequence", cfg.Mock.IDStrategy)
	assert.False(t, cfg.Mock.DerivedDashboard)
	assert.Equal(t, "memory", cfg.Session.Store)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BACKEND_MODE", "live")
	v.Set("BACKEND_URL", "https://hospital.internal/api")
	v.Set("MOCK_LATENCY", "0s")
	v.Set("MOCK_FAILURE_MODE", "NTH")
	v.Set("MOCK_FAILURE_EVERY", 3)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.True(t, cfg.Backend.Mode.IsLive())
	assert.Equal(t, "https://hospital.internal/api", cfg.Backend.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Mock.Latency)
	assert.Equal(t, "nth", cfg.Mock.FailureMode)
	assert.Equal(t, 3, cfg.Mock.FailureEvery)
}

func TestFromViper_BadMode(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BACKEND_MODE", "staging")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_BadDurations(t *testing.T) {
	for _, key := range []string{"BACKEND_TIMEOUT", "MOCK_LATENCY", "JWT_ACCESS_EXPIRY"} {
		v := viper.New()
		setDefaults(v)
		v.Set(key, "soon")

		_, err := fromViper(v)
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}

	v := viper.New()
	setDefaults(v)
	v.Set("MOCK_LATENCY", "-1s")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestParseIDStrategy(t *testing.T) {
	for in, want := range map[string]string{"": IDStrategySequence, "Sequence": IDStrategySequence, "UUID": IDStrategyUUID} {
		got, err := ParseIDStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	v := viper.New()
	setDefaults(v)
	v.Set("MOCK_ID_STRATEGY", "ulid")
	_, err := fromViper(v)
	assert.Error(t, err)
}
