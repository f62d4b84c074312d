package usecase

import (
	"context"
	"fmt"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound  = fmt.Errorf("patient %w", ErrNotFound)
	ErrDocumentNotFound = fmt.Errorf("document %w", ErrNotFound)
)

type PatientUsecase interface {
	GetPatients(ctx context.Context, filter *entity.PatientFilter) (*entity.Page[entity.Patient], error)
	GetPatient(ctx context.Context, id string) (*entity.Patient, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error)
	UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*entity.Patient, error)
	DeletePatient(ctx context.Context, id string) error
	SearchPatients(ctx context.Context, query string) ([]entity.Patient, error)

	GetPatientFindings(ctx context.Context, patientID string) ([]entity.Finding, error)
	SavePatientFinding(ctx context.Context, patientID string, req *dto.CreateFindingRequest) (*entity.Finding, error)
	GetPatientSuggestions(ctx context.Context, patientID string) ([]entity.Suggestion, error)
	SavePatientSuggestion(ctx context.Context, patientID string, req *dto.CreateSuggestionRequest) (*entity.Suggestion, error)
	GetPatientDocuments(ctx context.Context, patientID string) ([]entity.Document, error)
	UploadPatientDocument(ctx context.Context, patientID string, req *dto.UploadDocumentRequest) (*entity.Document, error)
	DeletePatientDocument(ctx context.Context, patientID, documentID string) error
}

type patientUsecase struct {
	backend     *Backend
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	recordRepo  repository.PatientRecordRepository
}

func NewPatientUsecase(
	backend *Backend,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	recordRepo repository.PatientRecordRepository,
) PatientUsecase {
	return &patientUsecase{
		backend:     backend,
		log:         log,
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
	}
}

func patientQuery(filter *entity.PatientFilter) queryBuilder {
	return newQuery().
		str("search", filter.Search).
		str("gender", filter.Gender).
		num("page", filter.Page).
		num("limit", filter.Limit)
}

func (u *patientUsecase) GetPatients(ctx context.Context, filter *entity.PatientFilter) (*entity.Page[entity.Patient], error) {
	if filter == nil {
		filter = &entity.PatientFilter{}
	}

	if u.backend.live() {
		page := new(entity.Page[entity.Patient])
		if err := u.backend.Client.Get(ctx, "/patients", patientQuery(filter).values(), page); err != nil {
			u.log.Warnf("Failed to fetch patients: %+v", err)
			return nil, err
		}
		return page, nil
	}

	if err := u.backend.simulate(ctx, "patients.list"); err != nil {
		u.log.Warnf("Failed to fetch patients: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return entity.NewPage(patients, filter.Page, filter.Limit), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*entity.Patient, error) {
	if u.backend.live() {
		patient := new(entity.Patient)
		if err := u.backend.Client.Get(ctx, resourcePath("patients", id), nil, patient); err != nil {
			u.log.Warnf("Failed to fetch patient: %+v", err)
			return nil, err
		}
		return patient, nil
	}

	if err := u.backend.simulate(ctx, "patients.get"); err != nil {
		u.log.Warnf("Failed to fetch patient: %+v", err)
		return nil, err
	}

	return u.findPatient(ctx, id)
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	if u.backend.live() {
		patient := new(entity.Patient)
		if err := u.backend.Client.Post(ctx, "/patients", req, patient); err != nil {
			u.log.Warnf("Failed to create patient: %+v", err)
			return nil, err
		}
		return patient, nil
	}

	if err := u.backend.simulate(ctx, "patients.create"); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	patient := converter.CreatePatientRequestToEntity(req)
	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return patient, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*entity.Patient, error) {
	if u.backend.live() {
		patient := new(entity.Patient)
		if err := u.backend.Client.Put(ctx, resourcePath("patients", id), req, patient); err != nil {
			u.log.Warnf("Failed to update patient: %+v", err)
			return nil, err
		}
		return patient, nil
	}

	if err := u.backend.simulate(ctx, "patients.update"); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	patient, err := u.patientRepo.Update(ctx, id, func(p *entity.Patient) {
		converter.ApplyPatientUpdate(p, req)
	})
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, ErrPatientNotFound)
		return nil, ErrPatientNotFound
	}

	return patient, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	if u.backend.live() {
		if err := u.backend.Client.Delete(ctx, resourcePath("patients", id), nil); err != nil {
			u.log.Warnf("Failed to delete patient: %+v", err)
			return err
		}
		return nil
	}

	if err := u.backend.simulate(ctx, "patients.delete"); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	removed, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if removed == 0 {
		u.log.Warnf("Failed to delete patient %s: %+v", id, ErrPatientNotFound)
		return ErrPatientNotFound
	}

	return nil
}

// SearchPatients matches query against name and email, without paging.
func (u *patientUsecase) SearchPatients(ctx context.Context, query string) ([]entity.Patient, error) {
	page, err := u.GetPatients(ctx, &entity.PatientFilter{Search: query})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (u *patientUsecase) GetPatientFindings(ctx context.Context, patientID string) ([]entity.Finding, error) {
	if u.backend.live() {
		var findings []entity.Finding
		if err := u.backend.Client.Get(ctx, resourcePath("patients", patientID, "findings"), nil, &findings); err != nil {
			u.log.Warnf("Failed to fetch patient findings: %+v", err)
			return nil, err
		}
		return findings, nil
	}

	if err := u.mockPatientCall(ctx, "patients.findings.list", patientID); err != nil {
		return nil, err
	}

	findings, err := u.recordRepo.FindFindings(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient findings: %+v", err)
		return nil, err
	}
	return findings, nil
}

func (u *patientUsecase) SavePatientFinding(ctx context.Context, patientID string, req *dto.CreateFindingRequest) (*entity.Finding, error) {
	if u.backend.live() {
		finding := new(entity.Finding)
		if err := u.backend.Client.Post(ctx, resourcePath("patients", patientID, "findings"), req, finding); err != nil {
			u.log.Warnf("Failed to save patient finding: %+v", err)
			return nil, err
		}
		return finding, nil
	}

	if err := u.mockPatientCall(ctx, "patients.findings.create", patientID); err != nil {
		return nil, err
	}

	finding := converter.FindingRequestToEntity(patientID, req)
	if err := u.recordRepo.CreateFinding(ctx, finding); err != nil {
		u.log.Warnf("Failed to save patient finding: %+v", err)
		return nil, err
	}
	return finding, nil
}

func (u *patientUsecase) GetPatientSuggestions(ctx context.Context, patientID string) ([]entity.Suggestion, error) {
	if u.backend.live() {
		var suggestions []entity.Suggestion
		if err := u.backend.Client.Get(ctx, resourcePath("patients", patientID, "suggestions"), nil, &suggestions); err != nil {
			u.log.Warnf("Failed to fetch patient suggestions: %+v", err)
			return nil, err
		}
		return suggestions, nil
	}

	if err := u.mockPatientCall(ctx, "patients.suggestions.list", patientID); err != nil {
		return nil, err
	}

	suggestions, err := u.recordRepo.FindSuggestions(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient suggestions: %+v", err)
		return nil, err
	}
	return suggestions, nil
}

func (u *patientUsecase) SavePatientSuggestion(ctx context.Context, patientID string, req *dto.CreateSuggestionRequest) (*entity.Suggestion, error) {
	if u.backend.live() {
		suggestion := new(entity.Suggestion)
		if err := u.backend.Client.Post(ctx, resourcePath("patients", patientID, "suggestions"), req, suggestion); err != nil {
			u.log.Warnf("Failed to save patient suggestion: %+v", err)
			return nil, err
		}
		return suggestion, nil
	}

	if err := u.mockPatientCall(ctx, "patients.suggestions.create", patientID); err != nil {
		return nil, err
	}

	suggestion := converter.SuggestionRequestToEntity(patientID, req)
	if err := u.recordRepo.CreateSuggestion(ctx, suggestion); err != nil {
		u.log.Warnf("Failed to save patient suggestion: %+v", err)
		return nil, err
	}
	return suggestion, nil
}

func (u *patientUsecase) GetPatientDocuments(ctx context.Context, patientID string) ([]entity.Document, error) {
	if u.backend.live() {
		var documents []entity.Document
		if err := u.backend.Client.Get(ctx, resourcePath("patients", patientID, "documents"), nil, &documents); err != nil {
			u.log.Warnf("Failed to fetch patient documents: %+v", err)
			return nil, err
		}
		return documents, nil
	}

	if err := u.mockPatientCall(ctx, "patients.documents.list", patientID); err != nil {
		return nil, err
	}

	documents, err := u.recordRepo.FindDocuments(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient documents: %+v", err)
		return nil, err
	}
	return documents, nil
}

func (u *patientUsecase) UploadPatientDocument(ctx context.Context, patientID string, req *dto.UploadDocumentRequest) (*entity.Document, error) {
	if u.backend.live() {
		document := new(entity.Document)
		if err := u.backend.Client.Post(ctx, resourcePath("patients", patientID, "documents"), req, document); err != nil {
			u.log.Warnf("Failed to upload patient document: %+v", err)
			return nil, err
		}
		return document, nil
	}

	if err := u.mockPatientCall(ctx, "patients.documents.create", patientID); err != nil {
		return nil, err
	}

	document := converter.DocumentRequestToEntity(patientID, req)
	if err := u.recordRepo.CreateDocument(ctx, document); err != nil {
		u.log.Warnf("Failed to upload patient document: %+v", err)
		return nil, err
	}
	return document, nil
}

func (u *patientUsecase) DeletePatientDocument(ctx context.Context, patientID, documentID string) error {
	if u.backend.live() {
		if err := u.backend.Client.Delete(ctx, resourcePath("patients", patientID, "documents", documentID), nil); err != nil {
			u.log.Warnf("Failed to delete patient document: %+v", err)
			return err
		}
		return nil
	}

	if err := u.mockPatientCall(ctx, "patients.documents.delete", patientID); err != nil {
		return err
	}

	removed, err := u.recordRepo.DeleteDocument(ctx, patientID, documentID)
	if err != nil {
		u.log.Warnf("Failed to delete patient document: %+v", err)
		return err
	}
	if removed == 0 {
		u.log.Warnf("Failed to delete document %s of patient %s: %+v", documentID, patientID, ErrDocumentNotFound)
		return ErrDocumentNotFound
	}
	return nil
}

// mockPatientCall runs the simulation step of a sub-resource call and checks
// that the owning patient exists.
func (u *patientUsecase) mockPatientCall(ctx context.Context, op, patientID string) error {
	if err := u.backend.simulate(ctx, op); err != nil {
		u.log.Warnf("Failed %s: %+v", op, err)
		return err
	}
	_, err := u.findPatient(ctx, patientID)
	return err
}

func (u *patientUsecase) findPatient(ctx context.Context, id string) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, ErrPatientNotFound)
		return nil, ErrPatientNotFound
	}
	return patient, nil
}
