package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// PatientStatus is the aggregate concern level for a patient. It only
// escalates through vital ingestion; a later normal reading never
// downgrades it.
type PatientStatus string

const (
	StatusStable           PatientStatus = "Stable"
	StatusUnderObservation PatientStatus = "UnderObservation"
	StatusCritical         PatientStatus = "Critical"
)

// ValidPatientStatus reports whether s is one of the known statuses.
func ValidPatientStatus(s PatientStatus) bool {
	switch s {
	case StatusStable, StatusUnderObservation, StatusCritical:
		return true
	}
	return false
}

// Patient is a clinical record owned by exactly one doctor.
type Patient struct {
	BaseModel
	DoctorID         string         `gorm:"size:36;index;not null" json:"doctorId"`
	FirstName        string         `gorm:"size:100;not null" json:"firstName"`
	LastName         string         `gorm:"size:100" json:"lastName"`
	Age              int            `json:"age"`
	ChronicCondition string         `gorm:"size:255" json:"chronicCondition,omitempty"`
	Status           PatientStatus  `gorm:"size:20;default:'Stable'" json:"status"`
	LatestVitals     datatypes.JSON `json:"latestVitals,omitempty"`
	// Version guards concurrent ingestion updates (conditional write).
	Version int `gorm:"default:0" json:"-"`

	// Relations
	Doctor User           `gorm:"foreignKey:DoctorID" json:"-"`
	Vitals []VitalReading `gorm:"foreignKey:PatientID" json:"vitals,omitempty"`
	Alerts []Alert        `gorm:"foreignKey:PatientID" json:"-"`
}

// LatestVitalsMap decodes the latestVitals JSON column. A patient with no
// readings yet yields an empty map.
func (p *Patient) LatestVitalsMap() (map[VitalType]VitalSnapshot, error) {
	out := map[VitalType]VitalSnapshot{}
	if len(p.LatestVitals) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(p.LatestVitals, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetLatestVital overwrites the snapshot entry for the reading's type.
// Only the most recent reading per type is retained here; full history
// lives in the Vitals rows.
func (p *Patient) SetLatestVital(r VitalReading) error {
	snapshot, err := p.LatestVitalsMap()
	if err != nil {
		return err
	}
	snapshot[r.Type] = VitalSnapshot{
		Value:     r.Value,
		Unit:      r.Unit,
		Timestamp: r.Timestamp,
		IsAlert:   r.IsAlert,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	p.LatestVitals = datatypes.JSON(raw)
	return nil
}
