package handlers

import (
	"vitalcare-server/internal/middleware"
	"vitalcare-server/internal/models"
	"vitalcare-server/internal/services"
	"vitalcare-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler handles patient registration and CRUD for doctors.
type PatientHandler struct {
	Patients services.PatientStore
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients services.PatientStore) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName"`
	Age              int    `json:"age" binding:"required,gt=0"`
	ChronicCondition string `json:"chronicCondition"`
}

// CreatePatient registers a new patient under the requesting doctor.
// New patients always start Stable with an empty vitals history.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	patient := models.Patient{
		DoctorID:         doctorID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Age:              req.Age,
		ChronicCondition: req.ChronicCondition,
		Status:           models.StatusStable,
	}

	if err := h.Patients.Create(c.Request.Context(), &patient); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// GetPatients lists the requesting doctor's own patients.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	patients, err := h.Patients.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// loadOwnedPatient fetches a patient and enforces the requesting doctor's
// ownership, writing the error response itself on failure.
func (h *PatientHandler) loadOwnedPatient(c *gin.Context) (*models.Patient, bool) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return nil, false
	}

	patient, err := h.Patients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ServiceError(c, err)
		return nil, false
	}
	if patient.DoctorID != doctorID {
		utils.Forbidden(c, "Patient is assigned to another doctor")
		return nil, false
	}
	return patient, true
}

// GetPatient fetches one of the requesting doctor's patients.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, ok := h.loadOwnedPatient(c)
	if !ok {
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatientRequest represents the request body for updating patient
// identity fields. Status is never writable here: it only moves through
// vital ingestion.
type UpdatePatientRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Age              int    `json:"age"`
	ChronicCondition string `json:"chronicCondition"`
}

// UpdatePatient updates identity fields on one of the doctor's patients.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patient, ok := h.loadOwnedPatient(c)
	if !ok {
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.Age > 0 {
		patient.Age = req.Age
	}
	if req.ChronicCondition != "" {
		patient.ChronicCondition = req.ChronicCondition
	}

	if err := h.Patients.Update(c.Request.Context(), patient, patient.Version); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient removes one of the doctor's patients.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patient, ok := h.loadOwnedPatient(c)
	if !ok {
		return
	}

	if err := h.Patients.Delete(c.Request.Context(), patient.ID); err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}
