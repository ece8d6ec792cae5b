package repository

import (
	"github.com/liberiadate/liberiadate/app/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile-related database operations
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	ListByStatus(status string) ([]models.Profile, error)
	CountByStatus(status string) (int64, error)
	Approve(id string) error
	Delete(id string) error
}

// ReportRepository defines the interface for abuse-report database operations
type ReportRepository interface {
	Create(report *models.Report) error
	List() ([]models.Report, error)
	Resolve(id string) error
	Delete(id string) error
}

// AdminUserRepository defines the interface for the admin account table
type AdminUserRepository interface {
	Count() (int64, error)
	GetByUsername(username string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
	DeleteAll() error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Profile   ProfileRepository
	Report    ReportRepository
	AdminUser AdminUserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Profile:   NewProfileRepository(db),
		Report:    NewReportRepository(db),
		AdminUser: NewAdminUserRepository(db),
	}
}
