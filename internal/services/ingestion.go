package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vitalcare-server/internal/metrics"
	"vitalcare-server/internal/models"
	"vitalcare-server/internal/vitals"
)

// AlertFactory turns abnormal classifications into persisted alerts.
// Persistence is best-effort: the clinical reading must never be lost
// because a secondary notification could not be written, so a failed save
// is logged and reported as "no alert" rather than propagated.
type AlertFactory struct {
	Alerts AlertStore
	Table  vitals.ThresholdTable
	Logger *zap.Logger
}

// CreateIfNeeded builds and persists a vital_sign alert for an abnormal
// reading. It returns nil for normal readings and for abnormal readings
// whose alert could not be saved.
func (f *AlertFactory) CreateIfNeeded(ctx context.Context, patient *models.Patient, reading models.VitalReading, cls vitals.Classification) *models.Alert {
	if !cls.Abnormal {
		return nil
	}

	alert := &models.Alert{
		PatientID: patient.ID,
		DoctorID:  patient.DoctorID,
		Type:      models.AlertTypeVitalSign,
		Message:   f.message(reading),
		Severity:  cls.Severity,
		Status:    models.AlertStatusNew,
	}

	if err := f.Alerts.Create(ctx, alert); err != nil {
		metrics.AlertSaveFailures.Inc()
		f.Logger.Error("alert persistence failed, vital reading is kept",
			zap.String("patient_id", patient.ID),
			zap.String("doctor_id", patient.DoctorID),
			zap.String("vital_type", string(reading.Type)),
			zap.String("severity", string(cls.Severity)),
			zap.Error(err),
		)
		return nil
	}

	metrics.AlertsCreated.WithLabelValues(string(cls.Severity)).Inc()
	return alert
}

func (f *AlertFactory) message(reading models.VitalReading) string {
	bounds, ok := f.Table.Bounds(reading.Type)
	if !ok {
		return fmt.Sprintf("%s reading of %g %s is outside normal range",
			reading.Type, reading.Value, reading.Unit)
	}
	return fmt.Sprintf("%s reading of %g %s is outside normal range (%g-%g %s)",
		reading.Type, reading.Value, reading.Unit,
		bounds.NormalLow, bounds.NormalHigh, reading.Unit)
}

// RecordVitalInput carries one reading submission.
type RecordVitalInput struct {
	PatientID string
	DoctorID  string
	Type      models.VitalType
	Value     float64
	Unit      string
}

// RecordVitalResult is the outcome of one submission. Alert is nil when
// the reading was normal or when alert persistence failed.
type RecordVitalResult struct {
	Reading models.VitalReading
	Alert   *models.Alert
}

// IngestionService is the single orchestration point for recording one
// vital-sign reading against one patient.
type IngestionService struct {
	Patients   PatientStore
	Vitals     VitalStore
	Classifier *vitals.Classifier
	Factory    *AlertFactory
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewIngestionService wires the ingestion pipeline over the given stores
// and threshold table.
func NewIngestionService(patients PatientStore, vitalStore VitalStore, alerts AlertStore, table vitals.ThresholdTable, logger *zap.Logger) *IngestionService {
	return &IngestionService{
		Patients:   patients,
		Vitals:     vitalStore,
		Classifier: vitals.NewClassifier(table),
		Factory:    &AlertFactory{Alerts: alerts, Table: table, Logger: logger},
		Logger:     logger,
		Now:        time.Now,
	}
}

// Record classifies and persists one reading, creating an alert and
// escalating the patient's status when the reading is abnormal.
// Authorization against the patient's owning doctor happens here and
// nowhere else on the vital write path.
func (s *IngestionService) Record(ctx context.Context, in RecordVitalInput) (*RecordVitalResult, error) {
	if !models.ValidVitalType(in.Type) {
		return nil, fmt.Errorf("%w: unknown vital type %q", ErrInvalidInput, in.Type)
	}
	if in.Unit == "" {
		return nil, fmt.Errorf("%w: unit is required", ErrInvalidInput)
	}

	patient, err := s.Patients.Get(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient.DoctorID != in.DoctorID {
		return nil, fmt.Errorf("%w: patient is assigned to another doctor", ErrForbidden)
	}

	cls := s.Classifier.Classify(in.Type, in.Value)

	reading := models.VitalReading{
		PatientID: patient.ID,
		Type:      in.Type,
		Value:     in.Value,
		Unit:      in.Unit,
		Timestamp: s.Now(),
		IsAlert:   cls.Abnormal,
	}

	if err := s.Vitals.Append(ctx, &reading); err != nil {
		return nil, err
	}

	if err := patient.SetLatestVital(reading); err != nil {
		return nil, fmt.Errorf("%w: latest vitals snapshot: %v", ErrInvalidInput, err)
	}

	var alert *models.Alert
	if cls.Abnormal {
		alert = s.Factory.CreateIfNeeded(ctx, patient, reading, cls)
		patient.Status = vitals.NextStatus(patient.Status, cls.Severity)
	}

	if err := s.Patients.Update(ctx, patient, patient.Version); err != nil {
		return nil, err
	}

	outcome := "normal"
	if cls.Abnormal {
		outcome = "abnormal"
	}
	metrics.ReadingsRecorded.WithLabelValues(string(in.Type), outcome).Inc()

	return &RecordVitalResult{Reading: reading, Alert: alert}, nil
}

// History returns a patient's readings newest first, enforcing the same
// doctor-ownership rule as Record.
func (s *IngestionService) History(ctx context.Context, patientID, doctorID string) ([]models.VitalReading, error) {
	patient, err := s.Patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.DoctorID != doctorID {
		return nil, fmt.Errorf("%w: patient is assigned to another doctor", ErrForbidden)
	}
	return s.Vitals.ListByPatient(ctx, patientID)
}
