package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-dashboard/config"
	deliveryHttp "hospital-dashboard/internal/delivery/http"
	"hospital-dashboard/internal/delivery/http/handler"
	"hospital-dashboard/internal/delivery/http/middleware"
	"hospital-dashboard/internal/infrastructure/httpclient"
	"hospital-dashboard/internal/infrastructure/session"
	"hospital-dashboard/internal/infrastructure/simulation"
	"hospital-dashboard/internal/repository"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/jwt"
	"hospital-dashboard/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrLiveModeServer is returned when the dev server is started against the live backend.
var ErrLiveModeServer = errors.New("the development server only runs with BACKEND_MODE=mock")

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Store       *repository.Store
	RedisClient *redis.Client
	Session     *session.Session
	JWT         *jwt.JWTService

	Auth         usecase.AuthUsecase
	Patients     usecase.PatientUsecase
	Doctors      usecase.DoctorUsecase
	Appointments usecase.AppointmentUsecase
	Dashboard    usecase.DashboardUsecase
	API          *usecase.API

	handler http.Handler
	Server  *http.Server
}

type options struct {
	logOutput      io.Writer
	sessionStore   string
	clock          func() time.Time
	onUnauthorized httpclient.UnauthorizedHandler
}

type Option func(*options)

// WithLogOutput sends logs somewhere other than stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithSessionStore overrides SESSION_STORE.
func WithSessionStore(kind string) Option {
	return func(o *options) { o.sessionStore = kind }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithUnauthorizedHandler sets what happens after the live backend answered 401.
func WithUnauthorizedHandler(h httpclient.UnauthorizedHandler) Option {
	return func(o *options) { o.onUnauthorized = h }
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, opts ...Option) (*App, error) {
	o := &options{
		logOutput: os.Stdout,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.sessionStore != "" {
		cfg.Session.Store = o.sessionStore
	}

	app := &App{
		Config: cfg,
		Log:    setupLogger(cfg.App.LogLevel, o.logOutput),
	}

	sess, err := app.initializeSession()
	if err != nil {
		return nil, err
	}
	app.Session = sess

	backend, err := app.initializeBackend(o)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.initializeUsecases(backend, o.clock)
	app.handler = app.initializeHandler()

	app.Log.WithFields(logrus.Fields{
		"backend": cfg.Backend.Mode,
		"session": cfg.Session.Store,
	}).Debug("Application initialized")

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string, out io.Writer) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func (app *App) initializeSession() (*session.Session, error) {
	cfg := app.Config
	var storage session.Storage

	switch cfg.Session.Store {
	case "", "memory":
		storage = session.NewMemoryStorage()
	case "file":
		storage = session.NewFileStorage(cfg.Session.File)
	case "redis":
		client, err := session.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.RedisClient = client
		storage = session.NewRedisStorage(client, "")
	default:
		return nil, fmt.Errorf("unknown session store %q, use memory, file or redis", cfg.Session.Store)
	}

	return session.New(storage, app.Log), nil
}

func (app *App) initializeBackend(o *options) (*usecase.Backend, error) {
	cfg := app.Config
	backend := &usecase.Backend{
		Mode:  cfg.Backend.Mode,
		Clock: o.clock,
	}

	if cfg.Backend.Mode.IsLive() {
		onUnauthorized := o.onUnauthorized
		if onUnauthorized == nil {
			onUnauthorized = func() {
				app.Log.Warn("Session expired, please log in again")
			}
		}
		client, err := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, app.Session, app.Log,
			httpclient.WithUnauthorizedHandler(onUnauthorized))
		if err != nil {
			return nil, fmt.Errorf("failed to create backend client: %w", err)
		}
		backend.Client = client
		return backend, nil
	}

	failure, err := simulation.NewFailurePolicy(cfg.Mock.FailureMode, cfg.Mock.FailureRate, cfg.Mock.FailureEvery)
	if err != nil {
		return nil, err
	}
	backend.Simulator = simulation.NewSimulator(cfg.Mock.Latency, failure, app.Log)

	ids, err := repository.NewIDGenerator(cfg.Mock.IDStrategy)
	if err != nil {
		return nil, err
	}
	app.Store = repository.NewSeededStore(
		repository.WithIDGenerator(ids),
		repository.WithClock(o.clock),
	)
	return backend, nil
}

func (app *App) initializeUsecases(backend *usecase.Backend, clock func() time.Time) {
	app.JWT = jwt.NewJWTService(app.Config.JWT)

	// Live mode never touches the store, but the repositories still need one.
	store := app.Store
	if store == nil {
		store = repository.NewStore(repository.WithClock(clock))
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(store)
	doctorRepo := repository.NewDoctorRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)
	recordRepo := repository.NewPatientRecordRepository(store)

	log := app.Log

	// Initialize usecases
	app.Auth = usecase.NewAuthUsecase(backend, log, app.Session, app.JWT)
	app.Patients = usecase.NewPatientUsecase(backend, log, patientRepo, recordRepo)
	app.Doctors = usecase.NewDoctorUsecase(backend, log, doctorRepo, appointmentRepo)
	app.Appointments = usecase.NewAppointmentUsecase(backend, log, appointmentRepo, patientRepo, doctorRepo)
	app.Dashboard = usecase.NewDashboardUsecase(backend, log, usecase.DashboardConfig{
		Derived: app.Config.Mock.DerivedDashboard,
		Stats:   repository.SeedDashboardStats(),
		Weekly:  repository.SeedWeeklyAppointments(),
	}, patientRepo, doctorRepo, appointmentRepo)
	app.API = usecase.NewAPI(app.Auth, app.Patients, app.Doctors, app.Appointments, app.Dashboard)
}

// initializeHandler wires the dev API server on top of the usecases
func (app *App) initializeHandler() http.Handler {
	customValidator := validator.NewValidator()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(app.Auth, customValidator)
	patientHandler := handler.NewPatientHandler(app.Patients, customValidator)
	doctorHandler := handler.NewDoctorHandler(app.Doctors, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(app.Appointments, app.Dashboard, customValidator)
	dashboardHandler := handler.NewDashboardHandler(app.Dashboard)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(app.JWT)
	corsMiddleware := middleware.NewCORSMiddleware("")
	loggingMiddleware := middleware.NewLoggingMiddleware(app.Log)

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	return router.Setup()
}

// Handler is the dev API server's root handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	if app.Config.Backend.Mode.IsLive() {
		return ErrLiveModeServer
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Config.App.Port),
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
