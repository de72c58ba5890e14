package controllers

import (
	"errors"
	"net/http"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentController struct {
	appointments repository.AppointmentRepository
	logs         repository.ReminderLogRepository
	reminders    *services.ReminderService
	loc          *time.Location
}

func NewAppointmentController(db *gorm.DB, reminders *services.ReminderService) *AppointmentController {
	return &AppointmentController{
		appointments: repository.NewAppointmentRepository(db),
		logs:         repository.NewReminderLogRepository(db),
		reminders:    reminders,
		loc:          utils.ClinicLocation(),
	}
}

// CreateAppointmentInput defines the expected JSON structure for scheduling
type CreateAppointmentInput struct {
	PatientID       string `json:"patientId" binding:"required,uuid"`
	DoctorID        string `json:"doctorId" binding:"required,uuid"`
	AppointmentDate string `json:"appointmentDate" binding:"required"` // YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime" binding:"required"` // HH:MM
	AppointmentType string `json:"appointmentType"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateAppointment schedules a new appointment
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := time.Parse(models.DateLayout, input.AppointmentDate); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment date must be YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(models.TimeLayout, input.AppointmentTime); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment time must be HH:MM")
		return
	}

	appt := models.Appointment{
		PatientID:       uuid.Must(uuid.Parse(input.PatientID)),
		DoctorID:        uuid.Must(uuid.Parse(input.DoctorID)),
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		AppointmentType: input.AppointmentType,
		Status:          models.StatusScheduled,
	}

	if err := ac.appointments.Create(&appt); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			utils.RespondWithError(c, http.StatusConflict, "Patient or doctor does not exist")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to schedule appointment")
		}
		return
	}

	// Re-read so the response embeds patient and doctor.
	created, err := ac.appointments.FindByID(appt.ID)
	if err != nil {
		c.JSON(http.StatusCreated, appt)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAppointments lists appointments ordered by date. ?filter=today|upcoming
// applies the derived views over the full collection.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	appts, err := ac.appointments.List(nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	now := time.Now()
	switch c.Query("filter") {
	case "today":
		appts = models.FilterToday(appts, now, ac.loc)
	case "upcoming":
		appts = models.FilterUpcoming(appts, now, ac.loc)
	}

	c.JSON(http.StatusOK, appts)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appt, err := ac.appointments.FindByID(apptUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatus applies a lifecycle transition. Terminal states
// reject any further change.
func (ac *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	next := models.AppointmentStatus(input.Status)
	if !next.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	appt, err := ac.appointments.FindByID(apptUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := appt.Transition(next, time.Now(), ac.loc); err != nil {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Invalid status transition")
		return
	}

	if err := ac.appointments.UpdateStatus(appt.ID, appt.Status); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// SendReminder dispatches the reminder for one appointment right now. Losing
// the race against the auto-remind sweep is reported as success.
func (ac *AppointmentController) SendReminder(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	switch err := ac.reminders.SendReminder(apptUUID, time.Now()); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Reminder sent successfully"})
	case errors.Is(err, models.ErrAlreadySent):
		c.JSON(http.StatusOK, gin.H{"message": "Reminder already sent", "alreadySent": true})
	case errors.Is(err, models.ErrChannelDisabled):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Patient's preferred contact channel is disabled")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send reminder")
	}
}

// GetReminderLogs lists delivery attempts for one appointment.
func (ac *AppointmentController) GetReminderLogs(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	logs, err := ac.logs.ListByAppointment(apptUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
