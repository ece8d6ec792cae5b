package repository

import (
	"github.com/liberiadate/liberiadate/app/models"
	"gorm.io/gorm"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a new report row
func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// List returns all reports, newest first. The caller derives the open count
// by filtering on status.
func (r *reportRepository) List() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Resolve marks a report as resolved; zero affected rows is ErrRecordNotFound.
func (r *reportRepository) Resolve(id string) error {
	result := r.db.Model(&models.Report{}).
		Where("id = ?", id).
		Update("status", models.ReportStatusResolved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a report
func (r *reportRepository) Delete(id string) error {
	result := r.db.Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
