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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lq, ok := parseListQuery(w, q, h.validator)
	if !ok {
		return
	}

	page, err := h.doctorUsecase.GetDoctors(r.Context(), &entity.DoctorFilter{
		Search:         q.Get("search"),
		Specialization: q.Get("specialization"),
		Page:           lq.Page,
		Limit:          lq.Limit,
	})
	if err != nil {
		writeError(w, err, "Failed to get doctors")
		return
	}

	response.JSON(w, http.StatusOK, page)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create doctor")
		return
	}

	response.JSON(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to update doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := h.doctorUsecase.DeleteDoctor(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Failed to delete doctor")
		return
	}

	response.Message(w, http.StatusOK, "Doctor deleted successfully")
}

func (h *DoctorHandler) GetDoctorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.doctorUsecase.GetDoctorStats(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get doctor stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
