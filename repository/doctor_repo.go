package repository

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	// List returns active doctors ordered by name.
	List() ([]models.Doctor, error)
	FindByID(id uuid.UUID) (*models.Doctor, error)
	Create(d *models.Doctor) error
}

type doctorRepo struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepo{db: db}
}

func (r *doctorRepo) List() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("is_active = ?", true).
		Order("last_name asc, first_name asc").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepo) FindByID(id uuid.UUID) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *doctorRepo) Create(d *models.Doctor) error {
	return r.db.Create(d).Error
}
