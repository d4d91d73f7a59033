package handlers

import (
	"vitalcare-server/internal/middleware"
	"vitalcare-server/internal/models"
	"vitalcare-server/internal/services"
	"vitalcare-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AlertHandler handles alert listing, manual creation and lifecycle
// transitions.
type AlertHandler struct {
	Lifecycle *services.LifecycleService
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(lifecycle *services.LifecycleService) *AlertHandler {
	return &AlertHandler{Lifecycle: lifecycle}
}

// GetAlerts handles GET /alerts?status=&patientId=, scoped to the
// requesting doctor's own alerts, newest first.
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	alerts, err := h.Lifecycle.List(c.Request.Context(), services.AlertFilter{
		DoctorID:  doctorID,
		PatientID: c.Query("patientId"),
		Status:    models.AlertStatus(c.Query("status")),
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Alerts fetched successfully", alerts)
}

// CreateAlertRequest represents the request body for a doctor-authored alert.
type CreateAlertRequest struct {
	PatientID string          `json:"patientId" binding:"required,uuid"`
	Message   string          `json:"message" binding:"required"`
	Severity  models.Severity `json:"severity" binding:"required"`
}

// CreateAlert handles POST /alerts (type=custom).
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	alert, err := h.Lifecycle.CreateCustom(c.Request.Context(), services.CustomAlertInput{
		PatientID: req.PatientID,
		DoctorID:  doctorID,
		Message:   req.Message,
		Severity:  req.Severity,
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Created(c, "Alert created successfully", alert)
}

// UpdateAlertStatusRequest represents the request body for a transition.
type UpdateAlertStatusRequest struct {
	Status models.AlertStatus `json:"status" binding:"required"`
}

// UpdateAlertStatus handles PUT /alerts/:id/status.
func (h *AlertHandler) UpdateAlertStatus(c *gin.Context) {
	var req UpdateAlertStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	alert, err := h.Lifecycle.Transition(c.Request.Context(), c.Param("id"), doctorID, req.Status)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Alert status updated successfully", alert)
}

// AcknowledgeAlertsRequest represents the request body for a batch
// acknowledge.
type AcknowledgeAlertsRequest struct {
	AlertIDs []string `json:"alertIds" binding:"required,min=1"`
}

// AcknowledgeAlertsResponse reports how many alerts were flipped.
type AcknowledgeAlertsResponse struct {
	Acknowledged int `json:"acknowledged"`
}

// AcknowledgeAlerts handles POST /alerts/acknowledge. Alerts that are not
// the caller's or not currently New are skipped without error.
func (h *AlertHandler) AcknowledgeAlerts(c *gin.Context) {
	var req AcknowledgeAlertsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	count, err := h.Lifecycle.AcknowledgeMany(c.Request.Context(), req.AlertIDs, doctorID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Alerts acknowledged", AcknowledgeAlertsResponse{Acknowledged: count})
}
