package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"vitalcare-server/internal/metrics"
	"vitalcare-server/internal/models"
)

// LifecycleService enforces authorization and (optionally) edge validation
// on alert status transitions.
//
// The default is permissive: any forward write of Acknowledged or Resolved
// is accepted regardless of the current state, which allows redundant
// same-state writes and New -> Resolved skips. Strict mode additionally
// rejects transitions out of Resolved and redundant writes.
type LifecycleService struct {
	Alerts   AlertStore
	Patients PatientStore
	Strict   bool
	Logger   *zap.Logger
}

// NewLifecycleService creates a permissive LifecycleService.
func NewLifecycleService(alerts AlertStore, patients PatientStore, logger *zap.Logger) *LifecycleService {
	return &LifecycleService{Alerts: alerts, Patients: patients, Logger: logger}
}

// Transition moves an alert to target on behalf of doctorID. Callers never
// request New: only Acknowledged and Resolved are accepted.
func (s *LifecycleService) Transition(ctx context.Context, alertID, doctorID string, target models.AlertStatus) (*models.Alert, error) {
	if target != models.AlertStatusAcknowledged && target != models.AlertStatusResolved {
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrInvalidInput,
			models.AlertStatusAcknowledged, models.AlertStatusResolved)
	}

	alert, err := s.Alerts.Get(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if alert.DoctorID != doctorID {
		return nil, fmt.Errorf("%w: alert belongs to another doctor", ErrForbidden)
	}

	if s.Strict {
		if alert.Status == models.AlertStatusResolved {
			return nil, fmt.Errorf("%w: alert is already resolved", ErrInvalidInput)
		}
		if alert.Status == target {
			return nil, fmt.Errorf("%w: alert is already %s", ErrInvalidInput, target)
		}
	}

	updated, err := s.Alerts.UpdateStatus(ctx, alertID, target)
	if err != nil {
		return nil, err
	}

	metrics.AlertTransitions.WithLabelValues(string(target)).Inc()
	return updated, nil
}

// AcknowledgeMany flips the caller's alerts that are currently New to
// Acknowledged, silently skipping everything else (other doctors' alerts,
// already-acknowledged or resolved ones, unknown IDs). It returns the
// number of alerts actually acknowledged.
func (s *LifecycleService) AcknowledgeMany(ctx context.Context, alertIDs []string, doctorID string) (int, error) {
	acknowledged := 0
	for _, id := range alertIDs {
		alert, err := s.Alerts.Get(ctx, id)
		if err != nil {
			continue
		}
		if alert.DoctorID != doctorID || alert.Status != models.AlertStatusNew {
			continue
		}
		if _, err := s.Alerts.UpdateStatus(ctx, id, models.AlertStatusAcknowledged); err != nil {
			s.Logger.Warn("batch acknowledge skipped alert",
				zap.String("alert_id", id), zap.Error(err))
			continue
		}
		metrics.AlertTransitions.WithLabelValues(string(models.AlertStatusAcknowledged)).Inc()
		acknowledged++
	}
	return acknowledged, nil
}

// CustomAlertInput carries a doctor-authored alert.
type CustomAlertInput struct {
	PatientID string
	DoctorID  string
	Message   string
	Severity  models.Severity
}

// CreateCustom lets a doctor author a custom alert against an owned
// patient. Unlike vital_sign alerts this write is not best-effort: the
// alert is the primary record being created.
func (s *LifecycleService) CreateCustom(ctx context.Context, in CustomAlertInput) (*models.Alert, error) {
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if !models.ValidSeverity(in.Severity) {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, in.Severity)
	}

	patient, err := s.Patients.Get(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient.DoctorID != in.DoctorID {
		return nil, fmt.Errorf("%w: patient is assigned to another doctor", ErrForbidden)
	}

	alert := &models.Alert{
		PatientID: patient.ID,
		DoctorID:  patient.DoctorID,
		Type:      models.AlertTypeCustom,
		Message:   in.Message,
		Severity:  in.Severity,
		Status:    models.AlertStatusNew,
	}
	if err := s.Alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	metrics.AlertsCreated.WithLabelValues(string(in.Severity)).Inc()
	return alert, nil
}

// List returns the doctor's alerts newest first, optionally filtered by
// status and patient.
func (s *LifecycleService) List(ctx context.Context, filter AlertFilter) ([]models.Alert, error) {
	if filter.Status != "" && !models.ValidAlertStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown alert status %q", ErrInvalidInput, filter.Status)
	}
	return s.Alerts.List(ctx, filter)
}
