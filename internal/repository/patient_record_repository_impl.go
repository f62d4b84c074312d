package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type patientRecordRepository struct {
	store *Store
}

func NewPatientRecordRepository(store *Store) domainRepo.PatientRecordRepository {
	return &patientRecordRepository{store: store}
}

func (r *patientRecordRepository) CreateFinding(ctx context.Context, finding *entity.Finding) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	finding.ID = s.ids.NewID(KindFinding)
	if finding.CreatedAt.IsZero() {
		finding.CreatedAt = s.now()
	}
	s.findings = append(s.findings, *finding)
	return nil
}

func (r *patientRecordRepository) FindFindings(ctx context.Context, patientID string) ([]entity.Finding, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.findings, func(f *entity.Finding) bool { return f.PatientID == patientID }), nil
}

func (r *patientRecordRepository) CreateSuggestion(ctx context.Context, suggestion *entity.Suggestion) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	suggestion.ID = s.ids.NewID(KindSuggestion)
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = s.now()
	}
	s.suggestions = append(s.suggestions, *suggestion)
	return nil
}

func (r *patientRecordRepository) FindSuggestions(ctx context.Context, patientID string) ([]entity.Suggestion, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.suggestions, func(sg *entity.Suggestion) bool { return sg.PatientID == patientID }), nil
}

func (r *patientRecordRepository) CreateDocument(ctx context.Context, document *entity.Document) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	document.ID = s.ids.NewID(KindDocument)
	if document.UploadedAt.IsZero() {
		document.UploadedAt = s.now()
	}
	s.documents = append(s.documents, *document)
	return nil
}

func (r *patientRecordRepository) FindDocuments(ctx context.Context, patientID string) ([]entity.Document, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.documents, func(d *entity.Document) bool { return d.PatientID == patientID }), nil
}

// DeleteDocument only removes the document when it belongs to patientID.
func (r *patientRecordRepository) DeleteDocument(ctx context.Context, patientID, documentID string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.documents, func(d *entity.Document) bool {
		return d.ID == documentID && d.PatientID == patientID
	})
	if i < 0 {
		return 0, nil
	}
	s.documents = splice(s.documents, i)
	return 1, nil
}
