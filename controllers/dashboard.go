package controllers

import (
	"net/http"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	loc          *time.Location
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		appointments: repository.NewAppointmentRepository(db),
		patients:     repository.NewPatientRepository(db),
		loc:          utils.ClinicLocation(),
	}
}

type DashboardOverview struct {
	TodayAppointments    int `json:"todayAppointments"`
	UpcomingAppointments int `json:"upcomingAppointments"`
	RemindersSent        int `json:"remindersSent"`
	TotalPatients        int `json:"totalPatients"`
}

// GetDashboardOverview recomputes the stat cards from the live collections.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	appts, err := dc.appointments.List(nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	patients, err := dc.patients.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve patients")
		return
	}

	now := time.Now()
	overview := DashboardOverview{
		TodayAppointments:    len(models.FilterToday(appts, now, dc.loc)),
		UpcomingAppointments: len(models.FilterUpcoming(appts, now, dc.loc)),
		RemindersSent:        models.CountRemindersSent(appts),
		TotalPatients:        len(patients),
	}

	c.JSON(http.StatusOK, overview)
}
