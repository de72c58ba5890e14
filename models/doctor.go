package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor is reference data: created once, listed by the scheduling form.
type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Specialty string `json:"specialty,omitempty"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
