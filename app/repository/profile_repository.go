package repository

import (
	"github.com/liberiadate/liberiadate/app/models"
	"gorm.io/gorm"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new profile row
func (r *profileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by its ID
func (r *profileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListByStatus returns all profiles in the given status, newest first
func (r *profileRepository) ListByStatus(status string) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountByStatus counts profiles in the given status
func (r *profileRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Approve flips a profile to approved. A zero-row update means the id does
// not exist and is reported as ErrRecordNotFound.
func (r *profileRepository) Approve(id string) error {
	result := r.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Update("status", models.ProfileStatusApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a profile regardless of its status
func (r *profileRepository) Delete(id string) error {
	result := r.db.Delete(&models.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
