package repository

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	// List returns every patient, newest registration first.
	List() ([]models.Patient, error)
	FindByID(id uuid.UUID) (*models.Patient, error)
	Create(p *models.Patient) error
	Update(p *models.Patient) error
}

type patientRepo struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepo{db: db}
}

func (r *patientRepo) List() ([]models.Patient, error) {
	var patients []models.Patient
	if err := r.db.Order("created_at desc").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) FindByID(id uuid.UUID) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patientRepo) Create(p *models.Patient) error {
	return r.db.Create(p).Error
}

func (r *patientRepo) Update(p *models.Patient) error {
	return r.db.Save(p).Error
}
