package controllers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportTestApp(t *testing.T) *fiber.App {
	t.Helper()

	rc := NewReportController(newTestRepos(t))

	app := fiber.New()
	app.Post("/api/reports", rc.HandleCreate)
	app.Get("/api/admin/reports", rc.HandleAdminList)
	app.Post("/api/admin/reports/:id/resolve", rc.HandleAdminResolve)
	app.Delete("/api/admin/reports/:id", rc.HandleAdminDelete)
	return app
}

func reportBody() fiber.Map {
	return fiber.Map{
		"profileId":       "profile-9",
		"reason":          "fake",
		"reporterName":    "A Reporter",
		"reporterContact": "reporter@example.org",
		"details":         "This profile looks fake.",
	}
}

func TestCreateReportRequiredFields(t *testing.T) {
	app := newReportTestApp(t)

	for _, field := range []string{"reason", "reporterName", "reporterContact", "details"} {
		body := reportBody()
		delete(body, field)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/reports", body), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing %s", field)
		assert.Equal(t, "Reason, name, contact, and details are required.", decodeBody(t, resp)["error"])
	}
}

func TestCreateReportDefaultsProfileToUnknown(t *testing.T) {
	app := newReportTestApp(t)

	body := reportBody()
	delete(body, "profileId")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/reports", body), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/admin/reports", nil), -1)
	require.NoError(t, err)
	reports, _ := decodeBody(t, resp)["reports"].([]any)
	require.Len(t, reports, 1)
	assert.Equal(t, "unknown", reports[0].(map[string]any)["profileId"])
}

func TestReportLifecycleOverHTTP(t *testing.T) {
	app := newReportTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/reports", reportBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["id"].(string)
	require.NotEmpty(t, id)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/admin/reports/"+id+"/resolve", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/admin/reports", nil), -1)
	require.NoError(t, err)
	reports, _ := decodeBody(t, resp)["reports"].([]any)
	require.Len(t, reports, 1)
	assert.Equal(t, "resolved", reports[0].(map[string]any)["status"])

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/admin/reports/"+id, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/admin/reports", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, decodeBody(t, resp)["reports"])
}

func TestReportModerationUnknownID(t *testing.T) {
	app := newReportTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/admin/reports/no-such/resolve", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Report not found.", decodeBody(t, resp)["error"])

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/admin/reports/no-such", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
