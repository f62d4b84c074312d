package handler

import (
	"net/http"

	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get dashboard stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) GetWeeklyAppointments(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.dashboardUsecase.GetWeeklyAppointments(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get weekly appointments")
		return
	}

	response.JSON(w, http.StatusOK, weekly)
}

func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardUsecase.GetOverview(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get dashboard overview")
		return
	}

	response.JSON(w, http.StatusOK, overview)
}
