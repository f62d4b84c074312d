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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lq, ok := parseListQuery(w, q, h.validator)
	if !ok {
		return
	}

	page, err := h.patientUsecase.GetPatients(r.Context(), &entity.PatientFilter{
		Search: q.Get("search"),
		Gender: q.Get("gender"),
		Page:   lq.Page,
		Limit:  lq.Limit,
	})
	if err != nil {
		writeError(w, err, "Failed to get patients")
		return
	}

	response.JSON(w, http.StatusOK, page)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.patientUsecase.GetPatient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get patient")
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create patient")
		return
	}

	response.JSON(w, http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePatientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to update patient")
		return
	}

	response.JSON(w, http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	if err := h.patientUsecase.DeletePatient(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err, "Failed to delete patient")
		return
	}

	response.Message(w, http.StatusOK, "Patient deleted successfully")
}

func (h *PatientHandler) GetFindings(w http.ResponseWriter, r *http.Request) {
	findings, err := h.patientUsecase.GetPatientFindings(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get findings")
		return
	}

	response.JSON(w, http.StatusOK, findings)
}

func (h *PatientHandler) SaveFinding(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFindingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	finding, err := h.patientUsecase.SavePatientFinding(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to save finding")
		return
	}

	response.JSON(w, http.StatusCreated, finding)
}

func (h *PatientHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.patientUsecase.GetPatientSuggestions(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get suggestions")
		return
	}

	response.JSON(w, http.StatusOK, suggestions)
}

func (h *PatientHandler) SaveSuggestion(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSuggestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	suggestion, err := h.patientUsecase.SavePatientSuggestion(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to save suggestion")
		return
	}

	response.JSON(w, http.StatusCreated, suggestion)
}

func (h *PatientHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.patientUsecase.GetPatientDocuments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to get documents")
		return
	}

	response.JSON(w, http.StatusOK, documents)
}

func (h *PatientHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	var req dto.UploadDocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	document, err := h.patientUsecase.UploadPatientDocument(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to upload document")
		return
	}

	response.JSON(w, http.StatusCreated, document)
}

func (h *PatientHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.patientUsecase.DeletePatientDocument(r.Context(), vars["id"], vars["docId"]); err != nil {
		writeError(w, err, "Failed to delete document")
		return
	}

	response.Message(w, http.StatusOK, "Document deleted successfully")
}
