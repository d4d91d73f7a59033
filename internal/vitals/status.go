package vitals

import (
	"vitalcare-server/internal/models"
)

// NextStatus computes a patient's status after an abnormal reading of the
// given severity. Status only escalates: Critical always wins, High lifts
// anything below Critical to UnderObservation, and Low/Medium leave the
// current status untouched. Callers skip this entirely for normal readings,
// so a run of normal values never downgrades a patient.
func NextStatus(current models.PatientStatus, severity models.Severity) models.PatientStatus {
	switch severity {
	case models.SeverityCritical:
		return models.StatusCritical
	case models.SeverityHigh:
		if current != models.StatusCritical {
			return models.StatusUnderObservation
		}
	}
	return current
}
