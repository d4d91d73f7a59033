package repository

import (
	"context"

	"gorm.io/gorm"

	"vitalcare-server/internal/models"
	"vitalcare-server/internal/services"
)

// PatientRepo is the GORM implementation of services.PatientStore.
type PatientRepo struct {
	DB *gorm.DB
}

// NewPatientRepo creates a PatientRepo.
func NewPatientRepo(db *gorm.DB) *PatientRepo {
	return &PatientRepo{DB: db}
}

func (r *PatientRepo) Get(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.DB.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

func (r *PatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.DB.WithContext(ctx).Create(patient).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update writes the patient's mutable fields conditionally on the version
// column. Zero rows affected means another writer got there first.
func (r *PatientRepo) Update(ctx context.Context, patient *models.Patient, expectedVersion int) error {
	result := r.DB.WithContext(ctx).Model(&models.Patient{}).
		Where("id = ? AND version = ?", patient.ID, expectedVersion).
		Updates(map[string]interface{}{
			"first_name":        patient.FirstName,
			"last_name":         patient.LastName,
			"age":               patient.Age,
			"chronic_condition": patient.ChronicCondition,
			"status":            patient.Status,
			"latest_vitals":     patient.LatestVitals,
			"version":           expectedVersion + 1,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return services.ErrConflict
	}
	patient.Version = expectedVersion + 1
	return nil
}

func (r *PatientRepo) Delete(ctx context.Context, id string) error {
	if err := r.DB.WithContext(ctx).Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *PatientRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.DB.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at desc").
		Find(&patients).Error
	if err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *PatientRepo) ListByStatusForDoctor(ctx context.Context, doctorID string, status models.PatientStatus) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.DB.WithContext(ctx).
		Where("doctor_id = ? AND status = ?", doctorID, status).
		Order("updated_at desc").
		Find(&patients).Error
	if err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *PatientRepo) CountByStatusForDoctor(ctx context.Context, doctorID string) (map[models.PatientStatus]int64, error) {
	var rows []struct {
		Status models.PatientStatus
		Count  int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.Patient{}).
		Select("status, count(*) as count").
		Where("doctor_id = ?", doctorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	counts := make(map[models.PatientStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
