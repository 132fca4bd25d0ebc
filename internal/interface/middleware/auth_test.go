package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/orderdeck/pkg/helpers"
)

func authRig(t *testing.T, apiKey string) (*gin.Engine, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	r := gin.New()
	r.GET("/whoami", Auth(jwt, apiKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"mode":      c.GetString(CtxAuthMode),
			"userID":    c.GetString(CtxUserID),
			"accountID": c.GetString(CtxAccountID),
		})
	})
	return r, jwt
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r, _ := authRig(t, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsBadToken(t *testing.T) {
	r, _ := authRig(t, "")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsBearer(t *testing.T) {
	r, jwt := authRig(t, "")
	token, _, err := jwt.GenerateSessionToken("u-1", "mario@example.com", "a-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"session"`)
	assert.Contains(t, w.Body.String(), `"userID":"u-1"`)
	assert.Contains(t, w.Body.String(), `"accountID":"a-1"`)
}

func TestAuthAcceptsSessionCookie(t *testing.T) {
	r, jwt := authRig(t, "")
	token, _, err := jwt.GenerateSessionToken("u-1", "mario@example.com", "a-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"session"`)
}

func TestAuthAcceptsAPIKey(t *testing.T) {
	r, _ := authRig(t, "super-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-api-key", "super-secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mode":"api_key"`)
}

func TestAuthRejectsWrongAPIKey(t *testing.T) {
	r, _ := authRig(t, "super-secret")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-api-key", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthIgnoresAPIKeyWhenUnconfigured(t *testing.T) {
	r, _ := authRig(t, "")

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("x-api-key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
