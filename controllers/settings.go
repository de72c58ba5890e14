package controllers

import (
	"net/http"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	settings repository.SettingsRepository
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{settings: repository.NewSettingsRepository(db)}
}

// UpdateReminderSettingsInput updates only the provided fields
type UpdateReminderSettingsInput struct {
	SMSEnabled      *bool `json:"smsEnabled"`
	WhatsAppEnabled *bool `json:"whatsappEnabled"`
	EmailEnabled    *bool `json:"emailEnabled"`

	ReminderTiming *int `json:"reminderTiming" binding:"omitempty,gte=0"`

	SMSTemplate      *string `json:"smsTemplate"`
	WhatsAppTemplate *string `json:"whatsappTemplate"`
	EmailTemplate    *string `json:"emailTemplate"`

	AutoRemind           *bool `json:"autoRemind"`
	ConfirmationRequired *bool `json:"confirmationRequired"`
}

type PreviewTemplateInput struct {
	Channel string `json:"channel" binding:"required,oneof=sms whatsapp email"`
}

// GetReminderSettings returns the clinic's reminder configuration, seeding
// defaults on first use.
func (sc *SettingsController) GetReminderSettings(c *gin.Context) {
	settings, err := sc.settings.Get()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load reminder settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateReminderSettings mutates the singleton settings row
func (sc *SettingsController) UpdateReminderSettings(c *gin.Context) {
	var input UpdateReminderSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings, err := sc.settings.Get()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load reminder settings")
		return
	}

	if input.SMSEnabled != nil {
		settings.SMSEnabled = *input.SMSEnabled
	}
	if input.WhatsAppEnabled != nil {
		settings.WhatsAppEnabled = *input.WhatsAppEnabled
	}
	if input.EmailEnabled != nil {
		settings.EmailEnabled = *input.EmailEnabled
	}
	if input.ReminderTiming != nil {
		settings.ReminderTiming = *input.ReminderTiming
	}
	if input.SMSTemplate != nil {
		settings.SMSTemplate = *input.SMSTemplate
	}
	if input.WhatsAppTemplate != nil {
		settings.WhatsAppTemplate = *input.WhatsAppTemplate
	}
	if input.EmailTemplate != nil {
		settings.EmailTemplate = *input.EmailTemplate
	}
	if input.AutoRemind != nil {
		settings.AutoRemind = *input.AutoRemind
	}
	if input.ConfirmationRequired != nil {
		settings.ConfirmationRequired = *input.ConfirmationRequired
	}

	if err := sc.settings.Save(settings); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reminder settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// PreviewTemplate renders the channel's current template with sample fields.
func (sc *SettingsController) PreviewTemplate(c *gin.Context) {
	var input PreviewTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings, err := sc.settings.Get()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load reminder settings")
		return
	}

	method := models.ContactMethod(input.Channel)
	preview := utils.RenderTemplate(settings.TemplateFor(method), utils.TemplateFields{
		PatientName:     "John Doe",
		DoctorName:      "Dr. Smith",
		Date:            "Jan 15, 2024",
		Time:            "10:00 AM",
		AppointmentType: "General Checkup",
	})

	c.JSON(http.StatusOK, gin.H{
		"channel": input.Channel,
		"preview": preview,
	})
}
