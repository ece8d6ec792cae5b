package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"

	// ReportProfileUnknown is stored when a report does not name a profile.
	ReportProfileUnknown = "unknown"
)

// Report is an abuse report filed by a visitor. ProfileID is free text and
// deliberately not a foreign key: a report may reference a profile that was
// deleted in the meantime, or none at all.
type Report struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	ProfileID       string    `gorm:"type:varchar(64);not null" json:"profileId"`
	Reason          string    `gorm:"type:varchar(100);not null" json:"reason" validate:"required"`
	ReporterName    string    `gorm:"type:varchar(150);not null" json:"reporterName" validate:"required"`
	ReporterContact string    `gorm:"type:varchar(150);not null" json:"reporterContact" validate:"required"`
	Details         string    `gorm:"type:text;not null" json:"details" validate:"required"`
	Status          string    `gorm:"type:varchar(20);not null;index" json:"status" validate:"oneof=open resolved"`
}

func (r *Report) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// IsOpen reports whether the report still needs admin attention.
func (r *Report) IsOpen() bool {
	return r.Status != ReportStatusResolved
}
