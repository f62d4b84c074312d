package http

import (
	"net/http"

	"hospital-dashboard/internal/delivery/http/handler"
	"hospital-dashboard/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers every route. CORS and request logging wrap the router
// itself so preflight requests are answered before route matching.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)

	// Everything below requires a token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/profile", r.authHandler.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/auth/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id}/findings", r.patientHandler.GetFindings).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/findings", r.patientHandler.SaveFinding).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}/suggestions", r.patientHandler.GetSuggestions).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/suggestions", r.patientHandler.SaveSuggestion).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}/documents", r.patientHandler.GetDocuments).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}/documents", r.patientHandler.UploadDocument).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}/documents/{docId}", r.patientHandler.DeleteDocument).Methods(http.MethodDelete)

	// Doctors (read for everyone signed in, write for admins)
	protected.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/stats", r.doctorHandler.GetDoctorStats).Methods(http.MethodGet)

	doctorAdmin := protected.NewRoute().Subrouter()
	doctorAdmin.Use(middleware.RequireAdmin)
	doctorAdmin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	doctorAdmin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	doctorAdmin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Appointments; fixed paths before {id}
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/today", r.appointmentHandler.GetTodayAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/upcoming", r.appointmentHandler.GetUpcomingAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/recent", r.appointmentHandler.GetRecentAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Dashboard
	protected.HandleFunc("/dashboard/stats", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/weekly-appointments", r.dashboardHandler.GetWeeklyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/overview", r.dashboardHandler.GetOverview).Methods(http.MethodGet)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
