package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVitalsSnapshotOverwrites(t *testing.T) {
	patient := Patient{DoctorID: "doc-1", FirstName: "Ada", Status: StatusStable}

	empty, err := patient.LatestVitalsMap()
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := VitalReading{
		Type: VitalHeartRate, Value: 72, Unit: "bpm",
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, patient.SetLatestVital(first))

	second := VitalReading{
		Type: VitalHeartRate, Value: 45, Unit: "bpm",
		Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		IsAlert:   true,
	}
	require.NoError(t, patient.SetLatestVital(second))

	temp := VitalReading{
		Type: VitalTemperature, Value: 36.6, Unit: "°C",
		Timestamp: time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC),
	}
	require.NoError(t, patient.SetLatestVital(temp))

	snapshot, err := patient.LatestVitalsMap()
	require.NoError(t, err)
	require.Len(t, snapshot, 2, "one entry per vital type")

	hr := snapshot[VitalHeartRate]
	assert.Equal(t, 45.0, hr.Value, "only the most recent reading per type is kept")
	assert.True(t, hr.IsAlert)
	assert.Equal(t, 36.6, snapshot[VitalTemperature].Value)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, ValidVitalType(VitalBloodPressure))
	assert.False(t, ValidVitalType("bloodSugar"))

	assert.True(t, ValidPatientStatus(StatusUnderObservation))
	assert.False(t, ValidPatientStatus("Discharged"))

	assert.True(t, ValidAlertStatus(AlertStatusAcknowledged))
	assert.False(t, ValidAlertStatus("Reopened"))

	assert.True(t, ValidSeverity(SeverityMedium))
	assert.False(t, ValidSeverity("Severe"))
}

func TestSeverityRankOrdering(t *testing.T) {
	assert.Less(t, SeverityLow.Rank(), SeverityMedium.Rank())
	assert.Less(t, SeverityMedium.Rank(), SeverityHigh.Rank())
	assert.Less(t, SeverityHigh.Rank(), SeverityCritical.Rank())
	assert.Equal(t, 0, Severity("").Rank())
}
