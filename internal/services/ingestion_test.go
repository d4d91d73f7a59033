package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vitalcare-server/internal/models"
	"vitalcare-server/internal/vitals"
)

type ingestionFixture struct {
	patients *memPatientStore
	vitals   *memVitalStore
	alerts   *memAlertStore
	svc      *IngestionService
}

func newIngestionFixture(t *testing.T) *ingestionFixture {
	t.Helper()
	f := &ingestionFixture{
		patients: newMemPatientStore(),
		vitals:   newMemVitalStore(),
		alerts:   newMemAlertStore(),
	}
	f.svc = NewIngestionService(f.patients, f.vitals, f.alerts, vitals.DefaultTable(), zap.NewNop())
	f.svc.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *ingestionFixture) addPatient(t *testing.T, doctorID string, status models.PatientStatus) *models.Patient {
	t.Helper()
	p := &models.Patient{
		DoctorID:  doctorID,
		FirstName: "Ada",
		Age:       64,
		Status:    status,
	}
	require.NoError(t, f.patients.Create(context.Background(), p))
	return p
}

func TestRecordCriticalReadingCreatesAlertAndEscalates(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     45,
		Unit:      "bpm",
	})
	require.NoError(t, err)

	assert.True(t, result.Reading.IsAlert)
	require.NotNil(t, result.Alert)
	assert.Equal(t, models.SeverityCritical, result.Alert.Severity)
	assert.Equal(t, models.AlertStatusNew, result.Alert.Status)
	assert.Equal(t, models.AlertTypeVitalSign, result.Alert.Type)
	assert.Equal(t, "doc-1", result.Alert.DoctorID)
	assert.Equal(t, "heartRate reading of 45 bpm is outside normal range (60-100 bpm)", result.Alert.Message)

	stored, err := f.patients.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCritical, stored.Status)

	snapshot, err := stored.LatestVitalsMap()
	require.NoError(t, err)
	assert.Equal(t, 45.0, snapshot[models.VitalHeartRate].Value)
	assert.True(t, snapshot[models.VitalHeartRate].IsAlert)
}

func TestRecordLowSeverityLeavesStatusUntouched(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalTemperature,
		Value:     38.5,
		Unit:      "°C",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Alert)
	assert.Equal(t, models.SeverityLow, result.Alert.Severity)

	stored, err := f.patients.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStable, stored.Status)
}

func TestRecordNormalReadingCreatesNoAlert(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalOxygenSaturation,
		Value:     97,
		Unit:      "%",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Alert)
	assert.False(t, result.Reading.IsAlert)

	readings, err := f.vitals.ListByPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.False(t, readings[0].IsAlert)
}

func TestRecordForbiddenForOtherDoctorsPatient(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-a", models.StatusStable)

	_, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-b",
		Type:      models.VitalHeartRate,
		Value:     45,
		Unit:      "bpm",
	})
	require.ErrorIs(t, err, ErrForbidden)

	// No side effects: no reading, no alert, status unchanged.
	readings, err := f.vitals.ListByPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Empty(t, readings)

	alerts, err := f.alerts.List(context.Background(), AlertFilter{DoctorID: "doc-a"})
	require.NoError(t, err)
	assert.Empty(t, alerts)

	stored, err := f.patients.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStable, stored.Status)
}

func TestRecordSurvivesAlertPersistenceFailure(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)
	f.alerts.failCreate = true

	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     130,
		Unit:      "bpm",
	})
	require.NoError(t, err, "the clinical record must not be lost over a failed alert write")

	assert.Nil(t, result.Alert)
	assert.True(t, result.Reading.IsAlert)

	// Reading and status escalation both persisted.
	readings, err := f.vitals.ListByPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	require.Len(t, readings, 1)

	stored, err := f.patients.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCritical, stored.Status)
}

func TestRecordStatusIsMonotonic(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)
	ctx := context.Background()

	submit := func(typ models.VitalType, value float64, unit string) {
		t.Helper()
		_, err := f.svc.Record(ctx, RecordVitalInput{
			PatientID: patient.ID, DoctorID: "doc-1",
			Type: typ, Value: value, Unit: unit,
		})
		require.NoError(t, err)
	}

	submit(models.VitalHeartRate, 45, "bpm") // Critical
	submit(models.VitalHeartRate, 72, "bpm") // normal again
	submit(models.VitalTemperature, 38.5, "°C") // Low severity

	stored, err := f.patients.Get(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCritical, stored.Status,
		"later normal or mild readings never downgrade an escalated patient")

	readings, err := f.vitals.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Len(t, readings, 3)
}

func TestRecordHighSeverityLiftsToObservation(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	// 110 bpm: abnormal, inside the critical band, 37.5% off the midpoint.
	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     110,
		Unit:      "bpm",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.Equal(t, models.SeverityHigh, result.Alert.Severity)

	stored, err := f.patients.Get(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderObservation, stored.Status)
}

func TestRecordBloodPressureNeverAlerts(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	result, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalBloodPressure,
		Value:     210,
		Unit:      "mmHg",
	})
	require.NoError(t, err)

	assert.Nil(t, result.Alert)
	assert.False(t, result.Reading.IsAlert)
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)

	_, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalType("bloodSugar"),
		Value:     100,
		Unit:      "mg/dL",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     72,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordUnknownPatient(t *testing.T) {
	f := newIngestionFixture(t)

	_, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: "missing",
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     72,
		Unit:      "bpm",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

// conflictingPatientStore loses every conditional write, as if a concurrent
// ingestion always got there first.
type conflictingPatientStore struct {
	*memPatientStore
}

func (s *conflictingPatientStore) Update(_ context.Context, _ *models.Patient, _ int) error {
	return ErrConflict
}

func TestRecordSurfacesLostUpdateAsConflict(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)
	f.svc.Patients = &conflictingPatientStore{f.patients}

	_, err := f.svc.Record(context.Background(), RecordVitalInput{
		PatientID: patient.ID,
		DoctorID:  "doc-1",
		Type:      models.VitalHeartRate,
		Value:     72,
		Unit:      "bpm",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHistoryNewestFirstAndOwned(t *testing.T) {
	f := newIngestionFixture(t)
	patient := f.addPatient(t, "doc-1", models.StatusStable)
	ctx := context.Background()

	for _, v := range []float64{70, 75, 80} {
		_, err := f.svc.Record(ctx, RecordVitalInput{
			PatientID: patient.ID, DoctorID: "doc-1",
			Type: models.VitalHeartRate, Value: v, Unit: "bpm",
		})
		require.NoError(t, err)
	}

	readings, err := f.svc.History(ctx, patient.ID, "doc-1")
	require.NoError(t, err)
	require.Len(t, readings, 3)
	assert.Equal(t, 80.0, readings[0].Value)
	assert.Equal(t, 70.0, readings[2].Value)

	_, err = f.svc.History(ctx, patient.ID, "doc-2")
	assert.ErrorIs(t, err, ErrForbidden)
}
