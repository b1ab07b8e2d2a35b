package server

import (
	"net/http"
	"testing"

	"commons/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	_, app, db := setupTestServer(t, "1h")

	t.Run("valid signup", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username":     "alice1",
			"password":     "s3cret",
			"display_name": "Alice",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var user models.User
		require.NoError(t, db.First(&user, "username = ?", "alice1").Error)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "s3cret", user.Password, "password must be stored hashed")
	})

	t.Run("duplicate username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "alice1",
			"password": "another",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "a b",
			"password": "s3cret",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username":         "grace1",
			"password":         "s3cret",
			"password_confirm": "different",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("password containing username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
			"username": "carol",
			"password": "xxcarolxx",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	_, app, _ := setupTestServer(t, "1h")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": "dave1",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("valid credentials", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "dave1",
			"password": "s3cret",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "dave1",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "nobody1",
			"password": "s3cret",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLoginReactivatesAccount(t *testing.T) {
	_, app, db := setupTestServer(t, "1h")

	token := signupAndLogin(t, app, "erin1", "s3cret")

	resp := doJSON(t, app, http.MethodPut, "/api/users/me/deactivate", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "erin1").Error)
	require.False(t, user.IsActive)

	// Logging in again flips the account back to active.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "erin1",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&user, "username = ?", "erin1").Error)
	assert.True(t, user.IsActive)
}

func TestAuthRequired(t *testing.T) {
	srv, app, _ := setupTestServer(t, "1h")

	t.Run("missing header", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := *srv.config
		other.JWTSecret = "a-completely-different-secret-key"
		otherSrv := &Server{config: &other}
		token, err := otherSrv.generateToken(1)
		require.NoError(t, err)

		resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signupAndLogin(t, app, "frank1", "s3cret")
		resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		decodeBody(t, resp, &user)
		assert.Equal(t, "frank1", user.Username)
	})
}
