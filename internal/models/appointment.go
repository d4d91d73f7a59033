package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// Appointment represents a scheduled visit between a patient user and a doctor.
type Appointment struct {
	BaseModel
	PatientUserID string            `gorm:"size:36;index" json:"patientUserId"`
	DoctorID      string            `gorm:"size:36;index" json:"doctorId"`
	StartTime     time.Time         `json:"startTime"`
	EndTime       time.Time         `json:"endTime"`
	Status        AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Reason        string            `gorm:"size:255" json:"reason"`
	Notes         string            `gorm:"type:text" json:"notes"`

	// Relations
	PatientUser User `gorm:"foreignKey:PatientUserID" json:"-"`
	Doctor      User `gorm:"foreignKey:DoctorID" json:"-"`
}
