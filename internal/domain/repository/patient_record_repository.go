package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

// PatientRecordRepository stores the per-patient sub-resources.
type PatientRecordRepository interface {
	CreateFinding(ctx context.Context, finding *entity.Finding) error
	FindFindings(ctx context.Context, patientID string) ([]entity.Finding, error)
	CreateSuggestion(ctx context.Context, suggestion *entity.Suggestion) error
	FindSuggestions(ctx context.Context, patientID string) ([]entity.Suggestion, error)
	CreateDocument(ctx context.Context, document *entity.Document) error
	FindDocuments(ctx context.Context, patientID string) ([]entity.Document, error)
	DeleteDocument(ctx context.Context, patientID, documentID string) (int64, error)
}
