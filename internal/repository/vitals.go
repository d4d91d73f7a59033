package repository

import (
	"context"

	"gorm.io/gorm"

	"vitalcare-server/internal/models"
)

// VitalRepo is the GORM implementation of services.VitalStore.
type VitalRepo struct {
	DB *gorm.DB
}

// NewVitalRepo creates a VitalRepo.
func NewVitalRepo(db *gorm.DB) *VitalRepo {
	return &VitalRepo{DB: db}
}

func (r *VitalRepo) Append(ctx context.Context, reading *models.VitalReading) error {
	if err := r.DB.WithContext(ctx).Create(reading).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *VitalRepo) ListByPatient(ctx context.Context, patientID string) ([]models.VitalReading, error) {
	var readings []models.VitalReading
	err := r.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("timestamp desc").
		Find(&readings).Error
	if err != nil {
		return nil, translate(err)
	}
	return readings, nil
}
