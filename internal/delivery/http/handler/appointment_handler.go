package handler

import (
	"net/http"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	dashboardUsecase   usecase.DashboardUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	dashboardUsecase usecase.DashboardUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		dashboardUsecase:   dashboardUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lq, ok := parseListQuery(w, q, h.validator)
	if !ok {
		return
	}

	page, err := h.appointmentUsecase.GetAppointments(r.Context(), &entity.AppointmentFilter{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Date:      q.Get("date"),
		DoctorID:  q.Get("doctor_id"),
		PatientID: q.Get("patient_id"),
		Page:      lq.Page,
		Limit:     lq.Limit,
	})
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.JSON(w, http.StatusOK, page)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get appointment")
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create appointment")
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAppointmentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err, "Failed to update appointment status")
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Message(w, http.StatusOK, "Appointment deleted successfully")
}

func (h *AppointmentHandler) GetTodayAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetTodayAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get today's appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetUpcomingAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get upcoming appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// GetRecentAppointments serves /appointments/recent, which belongs to the dashboard.
func (h *AppointmentHandler) GetRecentAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.dashboardUsecase.GetRecentAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get recent appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}
