package services

import (
	"context"

	"vitalcare-server/internal/models"
)

// DashboardSummary is the read-only rollup consumed by the doctor dashboard.
type DashboardSummary struct {
	PatientsByStatus map[models.PatientStatus]int64 `json:"patientsByStatus"`
	AlertsByStatus   map[models.AlertStatus]int64   `json:"alertsByStatus"`
	AlertsBySeverity map[models.Severity]int64      `json:"alertsBySeverity"`
	CriticalPatients []models.Patient               `json:"criticalPatients"`
	RecentAlerts     []models.Alert                 `json:"recentAlerts"`
}

// DashboardService produces rollups scoped to one doctor. Grouping queries
// only; it shares the status/severity vocabulary the write path produces
// but adds no logic of its own.
type DashboardService struct {
	Patients PatientStore
	Alerts   AlertStore
}

// NewDashboardService creates a DashboardService over the given stores.
func NewDashboardService(patients PatientStore, alerts AlertStore) *DashboardService {
	return &DashboardService{Patients: patients, Alerts: alerts}
}

const recentAlertLimit = 10

// Summary assembles the dashboard rollup for one doctor.
func (s *DashboardService) Summary(ctx context.Context, doctorID string) (*DashboardSummary, error) {
	patientCounts, err := s.Patients.CountByStatusForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	alertStatusCounts, err := s.Alerts.CountByStatusForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	alertSeverityCounts, err := s.Alerts.CountBySeverityForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	critical, err := s.Patients.ListByStatusForDoctor(ctx, doctorID, models.StatusCritical)
	if err != nil {
		return nil, err
	}

	recent, err := s.Alerts.List(ctx, AlertFilter{
		DoctorID:   doctorID,
		Unresolved: true,
		Limit:      recentAlertLimit,
	})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		PatientsByStatus: patientCounts,
		AlertsByStatus:   alertStatusCounts,
		AlertsBySeverity: alertSeverityCounts,
		CriticalPatients: critical,
		RecentAlerts:     recent,
	}, nil
}
