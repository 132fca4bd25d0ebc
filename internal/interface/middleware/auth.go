package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/pkg/helpers"
	"github.com/orderdeck/orderdeck/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxAccountID = "accountID"
	CtxAuthMode  = "authMode"
)

// Auth mode values.
const (
	ModeSession = "session"
	ModeAPIKey  = "api_key"
)

// Auth accepts either a trusted-automation shared secret (x-api-key header)
// or a session token, from the Authorization bearer header or the
// session_token cookie. Session requests get userID, userEmail and accountID
// set in the Gin context; API-key requests carry no user identity.
func Auth(jwt *helpers.JWTManager, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey != "" {
			if k := c.GetHeader("x-api-key"); k != "" &&
				subtle.ConstantTimeCompare([]byte(k), []byte(apiKey)) == 1 {
				c.Set(CtxAuthMode, ModeAPIKey)
				c.Next()
				return
			}
		}

		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("session_token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing session token", nil)
			return
		}

		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired session token", nil)
			return
		}

		c.Set(CtxAuthMode, ModeSession)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxAccountID, claims.AccountID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IsAPIKey reports whether the request was authorized via the shared secret.
func IsAPIKey(c *gin.Context) bool {
	return c.GetString(CtxAuthMode) == ModeAPIKey
}
