package repository

import (
	"context"

	"gorm.io/gorm"

	"vitalcare-server/internal/models"
	"vitalcare-server/internal/services"
)

// AlertRepo is the GORM implementation of services.AlertStore.
type AlertRepo struct {
	DB *gorm.DB
}

// NewAlertRepo creates an AlertRepo.
func NewAlertRepo(db *gorm.DB) *AlertRepo {
	return &AlertRepo{DB: db}
}

func (r *AlertRepo) Get(ctx context.Context, id string) (*models.Alert, error) {
	var alert models.Alert
	if err := r.DB.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &alert, nil
}

func (r *AlertRepo) Create(ctx context.Context, alert *models.Alert) error {
	if err := r.DB.WithContext(ctx).Create(alert).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *AlertRepo) UpdateStatus(ctx context.Context, id string, status models.AlertStatus) (*models.Alert, error) {
	var alert models.Alert
	if err := r.DB.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	alert.Status = status
	if err := r.DB.WithContext(ctx).Save(&alert).Error; err != nil {
		return nil, translate(err)
	}
	return &alert, nil
}

func (r *AlertRepo) List(ctx context.Context, filter services.AlertFilter) ([]models.Alert, error) {
	query := r.DB.WithContext(ctx).Where("doctor_id = ?", filter.DoctorID)
	if filter.PatientID != "" {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Unresolved {
		query = query.Where("status <> ?", models.AlertStatusResolved)
	}
	query = query.Order("created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var alerts []models.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, translate(err)
	}
	return alerts, nil
}

func (r *AlertRepo) CountByStatusForDoctor(ctx context.Context, doctorID string) (map[models.AlertStatus]int64, error) {
	var rows []struct {
		Status models.AlertStatus
		Count  int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.Alert{}).
		Select("status, count(*) as count").
		Where("doctor_id = ?", doctorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	counts := make(map[models.AlertStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *AlertRepo) CountBySeverityForDoctor(ctx context.Context, doctorID string) (map[models.Severity]int64, error) {
	var rows []struct {
		Severity models.Severity
		Count    int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.Alert{}).
		Select("severity, count(*) as count").
		Where("doctor_id = ?", doctorID).
		Group("severity").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	counts := make(map[models.Severity]int64, len(rows))
	for _, row := range rows {
		counts[row.Severity] = row.Count
	}
	return counts, nil
}
