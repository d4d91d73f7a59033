package models

import (
	"time"
)

// VitalType identifies the kind of clinical measurement a reading carries.
type VitalType string

const (
	VitalTemperature      VitalType = "temperature"
	VitalHeartRate        VitalType = "heartRate"
	VitalOxygenSaturation VitalType = "oxygenSaturation"
	VitalRespiratoryRate  VitalType = "respiratoryRate"
	VitalBloodPressure    VitalType = "bloodPressure"
)

// ValidVitalType reports whether t is one of the known vital types.
func ValidVitalType(t VitalType) bool {
	switch t {
	case VitalTemperature, VitalHeartRate, VitalOxygenSaturation,
		VitalRespiratoryRate, VitalBloodPressure:
		return true
	}
	return false
}

// VitalReading is a single timestamped measurement for a patient.
// Rows are append-only: insertion order is chronological order and
// IsAlert is fixed at classification time, never mutated retroactively.
type VitalReading struct {
	BaseModel
	PatientID string    `gorm:"size:36;index;not null" json:"patientId"`
	Type      VitalType `gorm:"size:30;not null" json:"type"`
	Value     float64   `json:"value"`
	Unit      string    `gorm:"size:20" json:"unit"`
	Timestamp time.Time `json:"timestamp"`
	IsAlert   bool      `gorm:"default:false" json:"isAlert"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// VitalSnapshot is the per-type entry kept in a patient's latestVitals map.
type VitalSnapshot struct {
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
	IsAlert   bool      `json:"isAlert"`
}
