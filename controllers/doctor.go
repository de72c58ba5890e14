package controllers

import (
	"errors"
	"net/http"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorController struct {
	doctors repository.DoctorRepository
}

func NewDoctorController(db *gorm.DB) *DoctorController {
	return &DoctorController{doctors: repository.NewDoctorRepository(db)}
}

type CreateDoctorInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Specialty string `json:"specialty"`
}

// GetDoctors lists the active doctors for the scheduling form.
func (dc *DoctorController) GetDoctors(c *gin.Context) {
	doctors, err := dc.doctors.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (dc *DoctorController) GetDoctor(c *gin.Context) {
	doctorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid doctor ID format")
		return
	}

	doctor, err := dc.doctors.FindByID(doctorUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Doctor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (dc *DoctorController) CreateDoctor(c *gin.Context) {
	var input CreateDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	doctor := models.Doctor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Specialty: input.Specialty,
		IsActive:  true,
	}

	if err := dc.doctors.Create(&doctor); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create doctor")
		return
	}

	c.JSON(http.StatusCreated, doctor)
}
