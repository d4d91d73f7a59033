package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalcare-server/internal/models"
)

func TestClassifyNormalRange(t *testing.T) {
	c := NewClassifier(DefaultTable())

	tests := []struct {
		name  string
		typ   models.VitalType
		value float64
	}{
		{"heart rate mid band", models.VitalHeartRate, 72},
		{"heart rate at normal low", models.VitalHeartRate, 60},
		{"heart rate at normal high", models.VitalHeartRate, 100},
		{"temperature mid band", models.VitalTemperature, 36.6},
		{"temperature at normal high", models.VitalTemperature, 38.0},
		{"oxygen saturation in band", models.VitalOxygenSaturation, 97},
		{"oxygen saturation at shared high bound", models.VitalOxygenSaturation, 100},
		{"respiratory rate in band", models.VitalRespiratoryRate, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := c.Classify(tt.typ, tt.value)
			assert.False(t, cls.Abnormal)
			assert.Empty(t, cls.Severity)
		})
	}
}

func TestClassifySeverityTiers(t *testing.T) {
	c := NewClassifier(DefaultTable())

	tests := []struct {
		name     string
		typ      models.VitalType
		value    float64
		severity models.Severity
	}{
		// At or beyond the critical band is always Critical.
		{"heart rate below critical low", models.VitalHeartRate, 45, models.SeverityCritical},
		{"heart rate at critical low", models.VitalHeartRate, 50, models.SeverityCritical},
		{"heart rate beyond critical high", models.VitalHeartRate, 130, models.SeverityCritical},
		{"temperature at critical high", models.VitalTemperature, 39.5, models.SeverityCritical},
		{"oxygen saturation below critical low", models.VitalOxygenSaturation, 88, models.SeverityCritical},
		// Between normal and critical: relative deviation from the midpoint.
		// temperature midpoint 36.75: 38.5 deviates ~4.8%, 38.9 ~5.8%.
		{"temperature slightly high", models.VitalTemperature, 38.5, models.SeverityLow},
		{"temperature moderately high", models.VitalTemperature, 38.9, models.SeverityMedium},
		// heart rate midpoint 80: 110 deviates 37.5%.
		{"heart rate well above band", models.VitalHeartRate, 110, models.SeverityHigh},
		{"heart rate just below band", models.VitalHeartRate, 55, models.SeverityHigh},
		// oxygen saturation midpoint 97.5: 93 deviates ~4.6%.
		{"oxygen saturation slightly low", models.VitalOxygenSaturation, 93, models.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := c.Classify(tt.typ, tt.value)
			require.True(t, cls.Abnormal)
			assert.Equal(t, tt.severity, cls.Severity)
		})
	}
}

func TestClassifyUnknownTypeNeverAlerts(t *testing.T) {
	c := NewClassifier(DefaultTable())

	// bloodPressure carries no numeric bounds: composite readings are
	// recorded but never classified.
	assert.False(t, c.Classify(models.VitalBloodPressure, 300).Abnormal)
	assert.False(t, c.Classify(models.VitalType("pulsePressure"), 999).Abnormal)
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier(DefaultTable())

	first := c.Classify(models.VitalHeartRate, 45)
	second := c.Classify(models.VitalHeartRate, 45)
	assert.Equal(t, first, second)
}

func TestClassifyZeroMidpointFallsBackToAbsoluteDeviation(t *testing.T) {
	// A band symmetric about zero has midpoint 0; severity must grade by
	// absolute deviation against the half-width instead of dividing.
	table := ThresholdTable{
		models.VitalTemperature: {
			NormalLow: -10, NormalHigh: 10,
			CriticalLow: -100, CriticalHigh: 100,
			Unit: "Δ",
		},
	}
	c := NewClassifier(table)

	// half-width 10: value 10.4 deviates 1.04 -> High tier.
	cls := c.Classify(models.VitalTemperature, 10.4)
	require.True(t, cls.Abnormal)
	assert.Equal(t, models.SeverityHigh, cls.Severity)
}

func TestClassifyMalformedBoundsNeverAlert(t *testing.T) {
	table := ThresholdTable{
		models.VitalHeartRate: {
			NormalLow: 100, NormalHigh: 60, // inverted band
			CriticalLow: 50, CriticalHigh: 120,
		},
	}
	c := NewClassifier(table)

	assert.False(t, c.Classify(models.VitalHeartRate, 45).Abnormal)
}
