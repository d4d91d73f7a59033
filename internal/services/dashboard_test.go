package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalcare-server/internal/models"
)

func TestDashboardSummary(t *testing.T) {
	patients := newMemPatientStore()
	alerts := newMemAlertStore()
	svc := NewDashboardService(patients, alerts)
	ctx := context.Background()

	addPatient := func(doctorID string, status models.PatientStatus) {
		require.NoError(t, patients.Create(ctx, &models.Patient{
			DoctorID: doctorID, FirstName: "P", Status: status,
		}))
	}
	addAlert := func(doctorID string, severity models.Severity, status models.AlertStatus) {
		require.NoError(t, alerts.Create(ctx, &models.Alert{
			PatientID: "pat", DoctorID: doctorID,
			Type: models.AlertTypeVitalSign, Message: "m",
			Severity: severity, Status: status,
		}))
	}

	addPatient("doc-1", models.StatusStable)
	addPatient("doc-1", models.StatusStable)
	addPatient("doc-1", models.StatusCritical)
	addPatient("doc-2", models.StatusCritical) // other doctor's patient

	addAlert("doc-1", models.SeverityCritical, models.AlertStatusNew)
	addAlert("doc-1", models.SeverityLow, models.AlertStatusResolved)
	addAlert("doc-1", models.SeverityHigh, models.AlertStatusAcknowledged)
	addAlert("doc-2", models.SeverityCritical, models.AlertStatusNew)

	summary, err := svc.Summary(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.PatientsByStatus[models.StatusStable])
	assert.Equal(t, int64(1), summary.PatientsByStatus[models.StatusCritical])

	assert.Equal(t, int64(1), summary.AlertsByStatus[models.AlertStatusNew])
	assert.Equal(t, int64(1), summary.AlertsByStatus[models.AlertStatusAcknowledged])
	assert.Equal(t, int64(1), summary.AlertsByStatus[models.AlertStatusResolved])

	assert.Equal(t, int64(1), summary.AlertsBySeverity[models.SeverityCritical])
	assert.Equal(t, int64(1), summary.AlertsBySeverity[models.SeverityHigh])

	require.Len(t, summary.CriticalPatients, 1)
	assert.Equal(t, "doc-1", summary.CriticalPatients[0].DoctorID)

	// Resolved alerts stay off the recent list.
	require.Len(t, summary.RecentAlerts, 2)
	for _, a := range summary.RecentAlerts {
		assert.NotEqual(t, models.AlertStatusResolved, a.Status)
		assert.Equal(t, "doc-1", a.DoctorID)
	}
}
