package handlers

import (
	"vitalcare-server/internal/middleware"
	"vitalcare-server/internal/models"
	"vitalcare-server/internal/services"
	"vitalcare-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// VitalHandler handles vital-sign submission and history.
type VitalHandler struct {
	Ingestion *services.IngestionService
}

// NewVitalHandler creates a new VitalHandler.
func NewVitalHandler(ingestion *services.IngestionService) *VitalHandler {
	return &VitalHandler{Ingestion: ingestion}
}

// RecordVitalRequest represents the request body for submitting a reading.
// Value is a pointer so an explicit zero survives required-binding.
type RecordVitalRequest struct {
	Type  models.VitalType `json:"type" binding:"required"`
	Value *float64         `json:"value" binding:"required"`
	Unit  string           `json:"unit" binding:"required"`
}

// RecordVitalResponse is the data payload returned for a submission.
type RecordVitalResponse struct {
	Reading      models.VitalReading `json:"reading"`
	Alert        *models.Alert       `json:"alert,omitempty"`
	AlertCreated bool                `json:"alertCreated"`
}

// RecordVital handles POST /patients/:id/vitals.
func (h *VitalHandler) RecordVital(c *gin.Context) {
	var req RecordVitalRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	result, err := h.Ingestion.Record(c.Request.Context(), services.RecordVitalInput{
		PatientID: c.Param("id"),
		DoctorID:  doctorID,
		Type:      req.Type,
		Value:     *req.Value,
		Unit:      req.Unit,
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	message := "Vital sign recorded successfully"
	if result.Alert != nil {
		message = "Vital sign recorded with alert"
	}

	utils.Created(c, message, RecordVitalResponse{
		Reading:      result.Reading,
		Alert:        result.Alert,
		AlertCreated: result.Alert != nil,
	})
}

// GetVitalHistory handles GET /patients/:id/vitals, newest first.
func (h *VitalHandler) GetVitalHistory(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	readings, err := h.Ingestion.History(c.Request.Context(), c.Param("id"), doctorID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Vital history fetched successfully", readings)
}
