package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProfileStatusPending  = "pending"
	ProfileStatusApproved = "approved"

	HasChildrenYes = "yes"
	HasChildrenNo  = "no"

	MinProfileAge = 18
	MaxProfileAge = 80
)

// Profile is a public dating listing. Submissions always start as pending
// and only an admin approval flips the status; approved profiles are
// immutable except for deletion.
type Profile struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name            string    `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Age             int       `gorm:"not null" json:"age" validate:"required,min=18,max=80"`
	Gender          string    `gorm:"type:varchar(30);not null" json:"gender" validate:"required"`
	LookingFor      string    `gorm:"type:varchar(30);not null" json:"lookingFor" validate:"required"`
	City            string    `gorm:"type:varchar(100);not null" json:"city" validate:"required"`
	Occupation      string    `gorm:"type:varchar(150);not null" json:"occupation" validate:"required"`
	Bio             string    `gorm:"type:text;not null" json:"bio" validate:"required"`
	Phone           string    `gorm:"type:varchar(50);not null" json:"phone" validate:"required"`
	Whatsapp        string    `gorm:"type:varchar(50);not null" json:"whatsapp" validate:"required"`
	HasChildren     string    `gorm:"type:varchar(3);not null" json:"hasChildren" validate:"oneof=yes no"`
	ChildrenDetails string    `gorm:"type:text;not null;default:''" json:"childrenDetails"`
	CardPhoto       string    `gorm:"type:varchar(255);not null" json:"cardPhoto" validate:"required"`
	FullBodyPhoto1  string    `gorm:"type:varchar(255);not null" json:"fullBodyPhoto1" validate:"required"`
	FullBodyPhoto2  string    `gorm:"type:varchar(255);not null" json:"fullBodyPhoto2" validate:"required"`
	IntroVideo      string    `gorm:"type:varchar(255);not null" json:"introVideo" validate:"required"`
	Status          string    `gorm:"type:varchar(20);not null;index" json:"status" validate:"oneof=pending approved"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (p *Profile) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// NormalizeHasChildren collapses the submitted value to exactly yes/no and
// drops children details when the answer is no.
func (p *Profile) NormalizeHasChildren() {
	if p.HasChildren != HasChildrenYes {
		p.HasChildren = HasChildrenNo
		p.ChildrenDetails = ""
	}
}

// IsApproved reports whether the profile is publicly visible.
func (p *Profile) IsApproved() bool {
	return p.Status == ProfileStatusApproved
}
