package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/liberiadate/liberiadate/app/models"
	"github.com/liberiadate/liberiadate/app/repository"
	"github.com/liberiadate/liberiadate/internal/pkg/session"
)

// AuthController owns the admin account lifecycle: setup, login, logout,
// session probe and the destructive account reset.
type AuthController struct {
	repos    *repository.Repositories
	sessions session.Store
}

func NewAuthController(repos *repository.Repositories, sessions session.Store) *AuthController {
	return &AuthController{repos: repos, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type resetRequest struct {
	Confirm string `json:"confirm"`
}

func (ac *AuthController) hasAccount() (bool, error) {
	count, err := ac.repos.AdminUser.Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HandleSetupStatus reports whether admin setup is still required.
// GET /api/admin/setup-status
func (ac *AuthController) HandleSetupStatus(c *fiber.Ctx) error {
	exists, err := ac.hasAccount()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Unable to check setup status.")
	}
	return c.JSON(fiber.Map{"needsSetup": !exists})
}

// HandleSetup creates the one admin account and logs it in.
// POST /api/admin/setup
func (ac *AuthController) HandleSetup(c *fiber.Ctx) error {
	exists, err := ac.hasAccount()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Unable to create admin account right now.")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "Admin setup is already completed.")
	}

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	username := strings.TrimSpace(req.Username)
	if len(username) < models.MinAdminUsernameLength {
		return jsonError(c, fiber.StatusBadRequest, "Username must be at least 3 characters.")
	}
	if len(req.Password) < models.MinAdminPasswordLength {
		return jsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters.")
	}

	user, err := models.CreateAdminUser(username, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid admin credentials.")
	}

	if err := ac.repos.AdminUser.Create(user); err != nil {
		// A racing setup may have inserted first; re-check before blaming the DB.
		if exists, checkErr := ac.hasAccount(); checkErr == nil && exists {
			return jsonError(c, fiber.StatusConflict, "Admin setup is already completed.")
		}
		fiberlog.Errorf("admin setup insert failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to create admin account right now.")
	}

	token, err := ac.sessions.Create()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Unable to create admin session.")
	}
	session.SetCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// HandleLogin verifies credentials and issues a session cookie.
// POST /api/admin/login
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	exists, err := ac.hasAccount()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Unable to log in right now.")
	}
	if !exists {
		return jsonError(c, fiber.StatusBadRequest, "No admin account exists yet. Complete admin setup first.")
	}

	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	username := strings.TrimSpace(req.Username)
	user, err := ac.repos.AdminUser.GetByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			fiberlog.Errorf("admin lookup failed: %v", err)
		}
		// Unknown username and wrong password answer identically.
		return jsonError(c, fiber.StatusUnauthorized, "Invalid admin username or password.")
	}
	if !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "Invalid admin username or password.")
	}

	token, err := ac.sessions.Create()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Unable to create admin session.")
	}
	session.SetCookie(c, token)

	return c.JSON(fiber.Map{"ok": true})
}

// HandleSession probes whether the caller holds a live admin session and
// slides its expiry when it does.
// GET /api/admin/session
func (ac *AuthController) HandleSession(c *fiber.Ctx) error {
	token := session.TokenFromRequest(c)
	if token == "" || !ac.sessions.Validate(token) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	session.SetCookie(c, token)
	return c.JSON(fiber.Map{"authenticated": true})
}

// HandleLogout revokes the caller's session. Safe to call without one.
// POST /api/admin/logout
func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if token := session.TokenFromRequest(c); token != "" {
		ac.sessions.Revoke(token)
	}
	session.ClearCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleResetAccount wipes the admin account table and every session. The
// literal confirmation string guards against accidental calls.
// POST /api/admin/reset-account
func (ac *AuthController) HandleResetAccount(c *fiber.Ctx) error {
	var req resetRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Reset confirmation is required.")
	}
	if strings.TrimSpace(req.Confirm) != models.ResetConfirmation {
		return jsonError(c, fiber.StatusBadRequest, "Reset confirmation is required.")
	}

	if err := ac.repos.AdminUser.DeleteAll(); err != nil {
		fiberlog.Errorf("admin reset failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Unable to reset the admin account right now.")
	}
	ac.sessions.RevokeAll()
	session.ClearCookie(c)

	return c.JSON(fiber.Map{"ok": true})
}
