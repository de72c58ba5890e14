package controllers

import (
	"errors"
	"net/http"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientController struct {
	patients repository.PatientRepository
}

func NewPatientController(db *gorm.DB) *PatientController {
	return &PatientController{patients: repository.NewPatientRepository(db)}
}

// CreatePatientInput defines the expected JSON structure for registering a patient
type CreatePatientInput struct {
	FirstName              string     `json:"firstName" binding:"required"`
	LastName               string     `json:"lastName" binding:"required"`
	Email                  string     `json:"email" binding:"required,email"`
	Phone                  string     `json:"phone" binding:"required"`
	DateOfBirth            *time.Time `json:"dateOfBirth"`
	Gender                 string     `json:"gender"`
	PreferredContactMethod string     `json:"preferredContactMethod" binding:"required,oneof=sms whatsapp email"`
}

// UpdatePatientInput defines the expected JSON structure for updating a patient
type UpdatePatientInput struct {
	FirstName              *string    `json:"firstName"`
	LastName               *string    `json:"lastName"`
	Email                  *string    `json:"email"`
	Phone                  *string    `json:"phone"`
	DateOfBirth            *time.Time `json:"dateOfBirth"`
	Gender                 *string    `json:"gender"`
	PreferredContactMethod *string    `json:"preferredContactMethod" binding:"omitempty,oneof=sms whatsapp email"`
}

// CreatePatient registers a new patient
func (pc *PatientController) CreatePatient(c *gin.Context) {
	var input CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	patient := models.Patient{
		FirstName:              input.FirstName,
		LastName:               input.LastName,
		Email:                  input.Email,
		Phone:                  input.Phone,
		DateOfBirth:            input.DateOfBirth,
		Gender:                 input.Gender,
		PreferredContactMethod: models.ContactMethod(input.PreferredContactMethod),
	}

	if err := pc.patients.Create(&patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Patient with this email already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create patient")
		}
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients lists patients, optionally narrowed by ?search= (case-insensitive
// substring over name, email and phone).
func (pc *PatientController) GetPatients(c *gin.Context) {
	patients, err := pc.patients.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve patients")
		return
	}

	if term := c.Query("search"); term != "" {
		patients = models.SearchPatients(patients, term)
	}

	c.JSON(http.StatusOK, patients)
}

// GetPatient retrieves a specific patient by ID
func (pc *PatientController) GetPatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	patient, err := pc.patients.FindByID(patientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdatePatient updates editable profile fields
func (pc *PatientController) UpdatePatient(c *gin.Context) {
	patientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid patient ID format")
		return
	}

	var input UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	patient, err := pc.patients.FindByID(patientUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Patient not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.Email != nil {
		patient.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		patient.Phone = *input.Phone
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.PreferredContactMethod != nil {
		patient.PreferredContactMethod = models.ContactMethod(*input.PreferredContactMethod)
	}

	if err := pc.patients.Update(patient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Another patient with this email already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update patient")
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}
