package repository

import (
	"github.com/liberiadate/liberiadate/app/models"
	"gorm.io/gorm"
)

// adminUserRepository implements the AdminUserRepository interface
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository instance
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// Count returns the number of admin accounts (zero or one by invariant)
func (r *adminUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

// GetByUsername retrieves the admin account by username
func (r *adminUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the admin account. The unique username index backs the
// single-account invariant when two setup requests race.
func (r *adminUserRepository) Create(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

// DeleteAll clears the admin account table (account reset)
func (r *adminUserRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AdminUser{}).Error
}
