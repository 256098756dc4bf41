package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableration/site-backend/auth"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "test-password",
	}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string        `json:"token"`
		User  auth.Identity `json:"user"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	assert.Equal(t, "admin@example.com", body.User.Email)

	// The issued token must pass verification.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/verify", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	verifyResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer verifyResp.Body.Close()
	assert.Equal(t, http.StatusOK, verifyResp.StatusCode)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{}, false)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "email", body["field"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/verify", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordReVerifiesCurrent(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.do(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "new-password",
	}, true)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = srv.do(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": "test-password",
		"newPassword":     "new-password",
	}, true)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password no longer works, new one does.
	loginResp := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "test-password",
	}, false)
	defer loginResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, loginResp.StatusCode)

	loginResp = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "new-password",
	}, false)
	defer loginResp.Body.Close()
	assert.Equal(t, http.StatusOK, loginResp.StatusCode)
}
