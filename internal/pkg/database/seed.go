package database

import (
	"github.com/liberiadate/liberiadate/app/models"
	"gorm.io/gorm"
)

// seedProfiles are the approved showcase listings inserted on first boot so
// the public site is never empty.
var seedProfiles = []models.Profile{
	{
		ID:              "seed-1",
		Name:            "Miatta Cooper",
		Age:             26,
		Gender:          "female",
		LookingFor:      "men",
		City:            "Monrovia",
		Occupation:      "Nurse",
		Bio:             "Faith-driven and family-oriented. I enjoy gospel music, beach walks, and meaningful conversations.",
		Phone:           "+231 77 321 1001",
		Whatsapp:        "+231 88 321 1001",
		HasChildren:     models.HasChildrenNo,
		ChildrenDetails: "",
		CardPhoto:       "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?auto=format&fit=crop&w=600&q=80",
		FullBodyPhoto1:  "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=800&q=80",
		FullBodyPhoto2:  "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=800&q=80",
		IntroVideo:      "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
		Status:          models.ProfileStatusApproved,
	},
	{
		ID:              "seed-2",
		Name:            "Emmanuel Kpadeh",
		Age:             31,
		Gender:          "male",
		LookingFor:      "women",
		City:            "Gbarnga",
		Occupation:      "Civil Engineer",
		Bio:             "Calm, ambitious, and ready to build a committed relationship with someone kind and honest.",
		Phone:           "+231 88 212 9921",
		Whatsapp:        "+231 77 212 9921",
		HasChildren:     models.HasChildrenYes,
		ChildrenDetails: "1 child (age 6)",
		CardPhoto:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=600&q=80",
		FullBodyPhoto1:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=800&q=80",
		FullBodyPhoto2:  "https://images.unsplash.com/photo-1504593811423-6dd665756598?auto=format&fit=crop&w=800&q=80",
		IntroVideo:      "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
		Status:          models.ProfileStatusApproved,
	},
	{
		ID:              "seed-3",
		Name:            "Musu Garley",
		Age:             29,
		Gender:          "female",
		LookingFor:      "men",
		City:            "Buchanan",
		Occupation:      "Business Owner",
		Bio:             "I value loyalty and growth. I run a small fashion shop and love traveling around Liberia.",
		Phone:           "+231 77 610 4420",
		Whatsapp:        "+231 88 610 4420",
		HasChildren:     models.HasChildrenYes,
		ChildrenDetails: "2 children (ages 5 and 8)",
		CardPhoto:       "https://images.unsplash.com/photo-1517841905240-472988babdf9?auto=format&fit=crop&w=600&q=80",
		FullBodyPhoto1:  "https://images.unsplash.com/photo-1542206395-9feb3edaa68d?auto=format&fit=crop&w=800&q=80",
		FullBodyPhoto2:  "https://images.unsplash.com/photo-1515377905703-c4788e51af15?auto=format&fit=crop&w=800&q=80",
		IntroVideo:      "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
		Status:          models.ProfileStatusApproved,
	},
}

// SeedProfiles inserts the showcase profiles when the table is empty.
func SeedProfiles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range seedProfiles {
			profile := seedProfiles[i]
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
