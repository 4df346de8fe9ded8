package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careermatch/config"
)

func testAuthService() *AuthService {
	return NewAuthService(config.AppConfig{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := testAuthService()

	token, err := svc.GenerateToken(42, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	svc := testAuthService()
	other := NewAuthService(config.AppConfig{JWTSecret: "different-secret", JWTExpirationHours: 1})

	token, err := other.GenerateToken(1, "ada@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_RejectsExpiredToken(t *testing.T) {
	expired := NewAuthService(config.AppConfig{JWTSecret: "test-secret", JWTExpirationHours: -1})

	token, err := expired.GenerateToken(1, "ada@example.com")
	require.NoError(t, err)

	_, err = testAuthService().ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := testAuthService()
	router := gin.New()
	router.GET("/protected", svc.Middleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("user_email")
		c.JSON(200, gin.H{"user_id": userID, "email": email})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header required")
	})

	t.Run("malformed token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(7, "ada@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ada@example.com")
	})

	t.Run("token without Bearer prefix", func(t *testing.T) {
		token, err := svc.GenerateToken(7, "ada@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
