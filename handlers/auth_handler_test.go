package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexipro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "SARAH@lexipro.test",
		"password": "lawyer-pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token     string      `json:"token"`
		ExpiresAt string      `json:"expires_at"`
		User      models.User `json:"user"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.Token)
	assert.NotEmpty(t, data.ExpiresAt)
	assert.Equal(t, models.RoleLawyer, data.User.Role)
	assert.NotContains(t, w.Body.String(), "lawyer-pw")

	var me models.User
	decodeData(t, s.do(http.MethodGet, "/api/auth/me", data.Token, nil), &me)
	assert.Equal(t, "Sarah Mitchell", me.Name)
	assert.Empty(t, me.PasswordHash)
}

func TestLoginWithSeededDemoAccounts(t *testing.T) {
	s := newTestServer(t)
	_, err := s.auth.SeedDemoUsers(context.Background(), "demo-pw")
	require.NoError(t, err)

	login := func(email string) string {
		w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "demo-pw"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var data struct {
			Token string `json:"token"`
		}
		decodeData(t, w, &data)
		return data.Token
	}

	var client ClientDashboard
	decodeData(t, s.do(http.MethodGet, "/api/dashboard", login("john.smith@example.com"), nil), &client)
	assert.Equal(t, models.RoleClient, client.Role)
	require.Len(t, client.Cases, 2)

	w := s.do(http.MethodGet, "/api/clients", login("sarah.mitchell@lexipro.dev"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "sarah@lexipro.test",
		"password": "guess",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Code)

	w = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "sarah@lexipro.test"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBearerSchemeIsRequired(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Token "+s.clientToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", s.clientToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
