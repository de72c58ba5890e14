package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"not null" json:"phone"`

	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      string     `json:"gender,omitempty"`

	PreferredContactMethod ContactMethod `gorm:"type:varchar(20);default:'sms';not null" json:"preferredContactMethod"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
