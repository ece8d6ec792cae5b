package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liberiadate/liberiadate/app/models"
	"github.com/liberiadate/liberiadate/app/repository"
	"github.com/liberiadate/liberiadate/internal/pkg/payment"
)

func newCheckoutTestApp(t *testing.T, payments *payment.Client) (*fiber.App, *repository.Repositories) {
	t.Helper()

	repos := newTestRepos(t)
	cc := NewCheckoutController(repos, payments)

	app := fiber.New()
	app.Post("/api/create-checkout-session", cc.HandleCreateCheckoutSession)
	app.Get("/api/verify-payment", cc.HandleVerifyPayment)
	return app, repos
}

func stripeTestClient(baseURL string) *payment.Client {
	return &payment.Client{
		SecretKey:  "sk_test_123",
		APIBaseURL: baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func seedApprovedProfile(t *testing.T, repos *repository.Repositories, id string) {
	t.Helper()

	profile := &models.Profile{
		ID:             id,
		Name:           "Test Person",
		Age:            30,
		Gender:         "female",
		LookingFor:     "men",
		City:           "Monrovia",
		Occupation:     "Teacher",
		Bio:            "Hello.",
		Phone:          "+231 77 000 0000",
		Whatsapp:       "+231 88 000 0000",
		HasChildren:    models.HasChildrenNo,
		CardPhoto:      "/uploads/a.jpg",
		FullBodyPhoto1: "/uploads/b.jpg",
		FullBodyPhoto2: "/uploads/c.jpg",
		IntroVideo:     "/uploads/d.mp4",
		Status:         models.ProfileStatusApproved,
	}
	require.NoError(t, repos.Profile.Create(profile))
}

func TestCreateCheckoutSessionUnconfigured(t *testing.T) {
	app, _ := newCheckoutTestApp(t, &payment.Client{HTTPClient: &http.Client{}})

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/create-checkout-session",
		fiber.Map{"profileId": "profile-1"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "Stripe is not configured")
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("gateway must not be called for invalid requests")
	}))
	defer gateway.Close()

	app, repos := newCheckoutTestApp(t, stripeTestClient(gateway.URL))

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/create-checkout-session", fiber.Map{}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing profileId.", decodeBody(t, resp)["error"])

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/create-checkout-session",
		fiber.Map{"profileId": "no-such-profile"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Pending profiles stay locked until moderation approves them.
	pending := &models.Profile{
		ID: "profile-pending", Name: "P", Age: 25, Gender: "male", LookingFor: "women",
		City: "Monrovia", Occupation: "Driver", Bio: "Hi.", Phone: "1", Whatsapp: "2",
		HasChildren: models.HasChildrenNo, CardPhoto: "/uploads/a.jpg",
		FullBodyPhoto1: "/uploads/b.jpg", FullBodyPhoto2: "/uploads/c.jpg",
		IntroVideo: "/uploads/d.mp4", Status: models.ProfileStatusPending,
	}
	require.NoError(t, repos.Profile.Create(pending))

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/create-checkout-session",
		fiber.Map{"profileId": "profile-pending"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Profile is not available for unlock.", decodeBody(t, resp)["error"])
}

func TestCreateCheckoutSessionForApprovedProfile(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://liberiadate.example")

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "profile-7", r.PostForm.Get("metadata[profile_id]"))
		assert.Equal(t, "https://liberiadate.example/index.html?session_id={CHECKOUT_SESSION_ID}&profile_id=profile-7",
			r.PostForm.Get("success_url"))
		assert.Equal(t, "https://liberiadate.example/index.html?payment=cancelled&profile_id=profile-7",
			r.PostForm.Get("cancel_url"))

		json.NewEncoder(w).Encode(map[string]any{
			"id":  "cs_test_1",
			"url": "https://checkout.example/cs_test_1",
		})
	}))
	defer gateway.Close()

	app, repos := newCheckoutTestApp(t, stripeTestClient(gateway.URL))
	seedApprovedProfile(t, repos, "profile-7")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/create-checkout-session",
		fiber.Map{"profileId": "profile-7"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://checkout.example/cs_test_1", decodeBody(t, resp)["url"])
}

func TestVerifyPayment(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":             "cs_test_9",
			"payment_status": "paid",
			"metadata":       map[string]string{"profile_id": "profile-7"},
		})
	}))
	defer gateway.Close()

	app, _ := newCheckoutTestApp(t, stripeTestClient(gateway.URL))

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/verify-payment?session_id=cs_test_9", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["paid"])

	resp, err = app.Test(jsonRequest(t, http.MethodGet,
		"/api/verify-payment?session_id=cs_test_9&profile_id=profile-7", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["paid"])

	// A session paid for another profile does not unlock this one.
	resp, err = app.Test(jsonRequest(t, http.MethodGet,
		"/api/verify-payment?session_id=cs_test_9&profile_id=profile-8", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, false, decodeBody(t, resp)["paid"])
}

func TestVerifyPaymentGatewayFailure(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"no such session"}}`, http.StatusNotFound)
	}))
	defer gateway.Close()

	app, _ := newCheckoutTestApp(t, stripeTestClient(gateway.URL))

	resp, err := app.Test(jsonRequest(t, http.MethodGet,
		"/api/verify-payment?session_id=cs_missing&profile_id=profile-7", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["paid"])
	assert.Equal(t, "Unable to verify payment.", body["error"])
}
