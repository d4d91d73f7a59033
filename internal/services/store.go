package services

import (
	"context"

	"vitalcare-server/internal/models"
)

// PatientStore is the persistence collaborator for patient aggregates.
type PatientStore interface {
	Get(ctx context.Context, id string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
	// Update writes the patient conditionally on expectedVersion and bumps
	// the version on success. A lost race returns ErrConflict.
	Update(ctx context.Context, patient *models.Patient, expectedVersion int) error
	Delete(ctx context.Context, id string) error
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Patient, error)
	ListByStatusForDoctor(ctx context.Context, doctorID string, status models.PatientStatus) ([]models.Patient, error)
	CountByStatusForDoctor(ctx context.Context, doctorID string) (map[models.PatientStatus]int64, error)
}

// VitalStore persists the append-only reading history.
type VitalStore interface {
	Append(ctx context.Context, reading *models.VitalReading) error
	// ListByPatient returns readings newest first.
	ListByPatient(ctx context.Context, patientID string) ([]models.VitalReading, error)
}

// AlertFilter narrows an alert listing. DoctorID is mandatory: alerts are
// always scoped to their owning doctor.
type AlertFilter struct {
	DoctorID   string
	PatientID  string
	Status     models.AlertStatus
	Unresolved bool
	Limit      int
}

// AlertStore is the persistence collaborator for alerts.
type AlertStore interface {
	Get(ctx context.Context, id string) (*models.Alert, error)
	Create(ctx context.Context, alert *models.Alert) error
	UpdateStatus(ctx context.Context, id string, status models.AlertStatus) (*models.Alert, error)
	// List returns alerts newest first.
	List(ctx context.Context, filter AlertFilter) ([]models.Alert, error)
	CountByStatusForDoctor(ctx context.Context, doctorID string) (map[models.AlertStatus]int64, error)
	CountBySeverityForDoctor(ctx context.Context, doctorID string) (map[models.Severity]int64, error)
}
