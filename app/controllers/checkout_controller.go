package controllers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/liberiadate/liberiadate/app/repository"
	"github.com/liberiadate/liberiadate/internal/pkg/env"
	"github.com/liberiadate/liberiadate/internal/pkg/payment"
)

// CheckoutController bridges profile unlocks to the payment gateway. It
// never records an unlock server-side: verification is read-only and the
// client remembers the result, which is a known trust boundary of the
// product, not an oversight.
type CheckoutController struct {
	repos    *repository.Repositories
	payments *payment.Client
}

func NewCheckoutController(repos *repository.Repositories, payments *payment.Client) *CheckoutController {
	return &CheckoutController{repos: repos, payments: payments}
}

type checkoutRequest struct {
	ProfileID string `json:"profileId"`
}

func unlockPriceCents() int64 {
	if v, err := strconv.ParseInt(env.GetEnv("CONTACT_UNLOCK_PRICE_CENTS", ""), 10, 64); err == nil && v > 0 {
		return v
	}
	return 300
}

func unlockCurrency() string {
	return strings.ToLower(env.GetEnv("CONTACT_UNLOCK_CURRENCY", "usd"))
}

// HandleCreateCheckoutSession starts a hosted checkout for unlocking one
// approved profile's contact details.
// POST /api/create-checkout-session
func (cc *CheckoutController) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	if !cc.payments.Configured() {
		return jsonError(c, fiber.StatusInternalServerError,
			"Stripe is not configured. Set STRIPE_SECRET_KEY in your .env file.")
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Missing profileId.")
	}
	profileID := strings.TrimSpace(req.ProfileID)
	if profileID == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing profileId.")
	}

	profile, err := cc.repos.Profile.GetByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Profile is not available for unlock.")
		}
		fiberlog.Errorf("profile lookup for checkout failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create checkout session.")
	}
	if !profile.IsApproved() {
		return jsonError(c, fiber.StatusNotFound, "Profile is not available for unlock.")
	}

	baseURL := publicBaseURL(c, env.GetEnv("PUBLIC_BASE_URL", ""))
	escaped := url.QueryEscape(profileID)

	sess, err := cc.payments.CreateCheckoutSession(c.Context(), payment.CheckoutParams{
		ProfileID:   profileID,
		AmountCents: unlockPriceCents(),
		Currency:    unlockCurrency(),
		ProductName: "Liberia Date Contact Unlock",
		Description: fmt.Sprintf("Unlock contact details for profile %s", profileID),
		SuccessURL:  baseURL + "/index.html?session_id={CHECKOUT_SESSION_ID}&profile_id=" + escaped,
		CancelURL:   baseURL + "/index.html?payment=cancelled&profile_id=" + escaped,
	})
	if err != nil {
		fiberlog.Errorf("checkout session create failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create checkout session.")
	}

	return c.JSON(fiber.Map{"url": sess.URL})
}

// HandleVerifyPayment reports whether a checkout session was paid for the
// named profile. Read-only: the unlock itself lives in the client.
// GET /api/verify-payment?session_id=...&profile_id=...
func (cc *CheckoutController) HandleVerifyPayment(c *fiber.Ctx) error {
	if !cc.payments.Configured() {
		return jsonError(c, fiber.StatusInternalServerError,
			"Stripe is not configured. Set STRIPE_SECRET_KEY in your .env file.")
	}

	sessionID := strings.TrimSpace(c.Query("session_id"))
	profileID := strings.TrimSpace(c.Query("profile_id"))
	if sessionID == "" || profileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"paid":  false,
			"error": "Missing session_id or profile_id.",
		})
	}

	sess, err := cc.payments.GetCheckoutSession(c.Context(), sessionID)
	if err != nil {
		fiberlog.Errorf("checkout session retrieve failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"paid":  false,
			"error": "Unable to verify payment.",
		})
	}

	return c.JSON(fiber.Map{"paid": sess.PaidFor(profileID)})
}
