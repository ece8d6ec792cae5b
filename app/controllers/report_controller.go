package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liberiadate/liberiadate/app/models"
	"github.com/liberiadate/liberiadate/app/repository"
)

// ReportController serves the public abuse-report submission and the admin
// report queue.
type ReportController struct {
	repos *repository.Repositories
}

func NewReportController(repos *repository.Repositories) *ReportController {
	return &ReportController{repos: repos}
}

type reportSubmitRequest struct {
	ID              string `json:"id"`
	ProfileID       string `json:"profileId"`
	Reason          string `json:"reason"`
	ReporterName    string `json:"reporterName"`
	ReporterContact string `json:"reporterContact"`
	Details         string `json:"details"`
}

// HandleCreate files an abuse report. The four descriptive fields are all
// required; the profile reference is free text and may name a profile that
// no longer exists.
// POST /api/reports
func (rc *ReportController) HandleCreate(c *fiber.Ctx) error {
	var req reportSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	reason := strings.TrimSpace(req.Reason)
	reporterName := strings.TrimSpace(req.ReporterName)
	reporterContact := strings.TrimSpace(req.ReporterContact)
	details := strings.TrimSpace(req.Details)
	if reason == "" || reporterName == "" || reporterContact == "" || details == "" {
		return jsonError(c, fiber.StatusBadRequest, "Reason, name, contact, and details are required.")
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "report-" + uuid.NewString()
	}
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" {
		profileID = models.ReportProfileUnknown
	}

	report := &models.Report{
		ID:              id,
		ProfileID:       profileID,
		Reason:          reason,
		ReporterName:    reporterName,
		ReporterContact: reporterContact,
		Details:         details,
		Status:          models.ReportStatusOpen,
	}

	if err := rc.repos.Report.Create(report); err != nil {
		fiberlog.Errorf("report insert failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to save the report right now.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": report.ID})
}

// HandleAdminList returns every report, newest first.
// GET /api/admin/reports
func (rc *ReportController) HandleAdminList(c *fiber.Ctx) error {
	reports, err := rc.repos.Report.List()
	if err != nil {
		fiberlog.Errorf("report listing failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to load reports.")
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return c.JSON(fiber.Map{"reports": reports})
}

// HandleAdminResolve marks a report as resolved.
// POST /api/admin/reports/:id/resolve
func (rc *ReportController) HandleAdminResolve(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if err := rc.repos.Report.Resolve(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Report not found.")
		}
		fiberlog.Errorf("report resolve failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to resolve the report right now.")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// HandleAdminDelete removes a report.
// DELETE /api/admin/reports/:id
func (rc *ReportController) HandleAdminDelete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if err := rc.repos.Report.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Report not found.")
		}
		fiberlog.Errorf("report delete failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to delete the report right now.")
	}
	return c.JSON(fiber.Map{"ok": true})
}
