package models

// Severity is the ordinal classification of how abnormal a reading is.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Rank orders severities Low < Medium < High < Critical. Unknown values
// rank below Low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// ValidSeverity reports whether s is one of the known severities.
func ValidSeverity(s Severity) bool {
	return s.Rank() > 0
}

// AlertType distinguishes system-generated alerts from doctor-authored ones.
type AlertType string

const (
	AlertTypeVitalSign AlertType = "vital_sign"
	AlertTypeCustom    AlertType = "custom"
)

// AlertStatus is the lifecycle state of an alert: New -> Acknowledged -> Resolved.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "New"
	AlertStatusAcknowledged AlertStatus = "Acknowledged"
	AlertStatusResolved     AlertStatus = "Resolved"
)

// ValidAlertStatus reports whether s is one of the known lifecycle states.
func ValidAlertStatus(s AlertStatus) bool {
	switch s {
	case AlertStatusNew, AlertStatusAcknowledged, AlertStatusResolved:
		return true
	}
	return false
}

// Alert represents a condition requiring clinical attention. DoctorID is
// copied from the patient at creation time: reassigning the patient to a
// different doctor does not change who may act on existing alerts.
type Alert struct {
	BaseModel
	PatientID string      `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID  string      `gorm:"size:36;index;not null" json:"doctorId"`
	Type      AlertType   `gorm:"size:20;default:'vital_sign'" json:"type"`
	Message   string      `gorm:"size:500;not null" json:"message"`
	Severity  Severity    `gorm:"size:20;not null" json:"severity"`
	Status    AlertStatus `gorm:"size:20;default:'New'" json:"status"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"-"`
}
