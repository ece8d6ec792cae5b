package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liberiadate/liberiadate/app/models"
	"github.com/liberiadate/liberiadate/app/repository"
)

// ProfileController serves the public listing/submission endpoints and the
// admin moderation endpoints for profiles.
type ProfileController struct {
	repos *repository.Repositories
}

func NewProfileController(repos *repository.Repositories) *ProfileController {
	return &ProfileController{repos: repos}
}

// flexNumber accepts a JSON number or a numeric string; the submission
// wizard posts form values, so "27" and 27 both arrive in the wild.
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Leave unset; the required-field check reports it.
		return nil
	}
	n.value = f
	n.set = true
	return nil
}

type profileSubmitRequest struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Age             flexNumber `json:"age"`
	Gender          string     `json:"gender"`
	LookingFor      string     `json:"lookingFor"`
	City            string     `json:"city"`
	Occupation      string     `json:"occupation"`
	Bio             string     `json:"bio"`
	Phone           string     `json:"phone"`
	Whatsapp        string     `json:"whatsapp"`
	HasChildren     string     `json:"hasChildren"`
	ChildrenDetails string     `json:"childrenDetails"`
	CardPhoto       string     `json:"cardPhoto"`
	FullBodyPhoto1  string     `json:"fullBodyPhoto1"`
	FullBodyPhoto2  string     `json:"fullBodyPhoto2"`
	IntroVideo      string     `json:"introVideo"`
	// Status is deliberately ignored: submissions always start pending.
	Status string `json:"status"`
}

// firstMissingField walks the required fields in form order and returns the
// first empty one.
func (r *profileSubmitRequest) firstMissingField() string {
	checks := []struct {
		name  string
		empty bool
	}{
		{"name", strings.TrimSpace(r.Name) == ""},
		{"age", !r.Age.set},
		{"gender", strings.TrimSpace(r.Gender) == ""},
		{"lookingFor", strings.TrimSpace(r.LookingFor) == ""},
		{"city", strings.TrimSpace(r.City) == ""},
		{"occupation", strings.TrimSpace(r.Occupation) == ""},
		{"bio", strings.TrimSpace(r.Bio) == ""},
		{"phone", strings.TrimSpace(r.Phone) == ""},
		{"whatsapp", strings.TrimSpace(r.Whatsapp) == ""},
		{"hasChildren", strings.TrimSpace(r.HasChildren) == ""},
		{"cardPhoto", strings.TrimSpace(r.CardPhoto) == ""},
		{"fullBodyPhoto1", strings.TrimSpace(r.FullBodyPhoto1) == ""},
		{"fullBodyPhoto2", strings.TrimSpace(r.FullBodyPhoto2) == ""},
		{"introVideo", strings.TrimSpace(r.IntroVideo) == ""},
	}
	for _, check := range checks {
		if check.empty {
			return check.name
		}
	}
	return ""
}

// HandleListApproved returns the public listing. Only status=approved may be
// requested; anything else is rejected rather than leaking pending profiles.
// GET /api/profiles?status=approved
func (pc *ProfileController) HandleListApproved(c *fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status != models.ProfileStatusApproved {
		return jsonError(c, fiber.StatusBadRequest, "Only approved profile listing is allowed.")
	}

	profiles, err := pc.repos.Profile.ListByStatus(models.ProfileStatusApproved)
	if err != nil {
		fiberlog.Errorf("approved profile listing failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to load profiles right now.")
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	return c.JSON(fiber.Map{"profiles": profiles})
}

// HandleSubmit accepts a public profile submission. The profile always lands
// as pending regardless of any caller-supplied status.
// POST /api/profiles
func (pc *ProfileController) HandleSubmit(c *fiber.Ctx) error {
	var req profileSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	if missing := req.firstMissingField(); missing != "" {
		return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Missing required field: %s", missing))
	}

	age := req.Age.value
	if math.IsNaN(age) || math.IsInf(age, 0) || age != math.Trunc(age) ||
		age < models.MinProfileAge || age > models.MaxProfileAge {
		return jsonError(c, fiber.StatusBadRequest, "Age must be between 18 and 80.")
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "profile-" + uuid.NewString()
	}

	profile := &models.Profile{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Age:             int(age),
		Gender:          strings.TrimSpace(req.Gender),
		LookingFor:      strings.TrimSpace(req.LookingFor),
		City:            strings.TrimSpace(req.City),
		Occupation:      strings.TrimSpace(req.Occupation),
		Bio:             strings.TrimSpace(req.Bio),
		Phone:           strings.TrimSpace(req.Phone),
		Whatsapp:        strings.TrimSpace(req.Whatsapp),
		HasChildren:     strings.TrimSpace(req.HasChildren),
		ChildrenDetails: strings.TrimSpace(req.ChildrenDetails),
		CardPhoto:       strings.TrimSpace(req.CardPhoto),
		FullBodyPhoto1:  strings.TrimSpace(req.FullBodyPhoto1),
		FullBodyPhoto2:  strings.TrimSpace(req.FullBodyPhoto2),
		IntroVideo:      strings.TrimSpace(req.IntroVideo),
		Status:          models.ProfileStatusPending,
	}
	profile.NormalizeHasChildren()

	if err := profile.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Profile submission failed validation.")
	}

	if err := pc.repos.Profile.Create(profile); err != nil {
		fiberlog.Errorf("profile insert failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to save the profile right now.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": profile.ID})
}

// HandleAdminList returns the moderation queue plus the approved count.
// GET /api/admin/profiles
func (pc *ProfileController) HandleAdminList(c *fiber.Ctx) error {
	pending, err := pc.repos.Profile.ListByStatus(models.ProfileStatusPending)
	if err != nil {
		fiberlog.Errorf("pending profile listing failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to load pending profiles.")
	}
	if pending == nil {
		pending = []models.Profile{}
	}

	approvedCount, err := pc.repos.Profile.CountByStatus(models.ProfileStatusApproved)
	if err != nil {
		fiberlog.Errorf("approved profile count failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to load pending profiles.")
	}

	return c.JSON(fiber.Map{"pending": pending, "approvedCount": approvedCount})
}

// HandleAdminApprove flips a pending profile to approved.
// POST /api/admin/profiles/:id/approve
func (pc *ProfileController) HandleAdminApprove(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if err := pc.repos.Profile.Approve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Profile not found.")
		}
		fiberlog.Errorf("profile approve failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to approve the profile right now.")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// HandleAdminDelete removes a profile regardless of status.
// DELETE /api/admin/profiles/:id
func (pc *ProfileController) HandleAdminDelete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if err := pc.repos.Profile.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Profile not found.")
		}
		fiberlog.Errorf("profile delete failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to delete the profile right now.")
	}
	return c.JSON(fiber.Map{"ok": true})
}
