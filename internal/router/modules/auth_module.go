package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
)

// AuthModule wires the public authentication surface.
// POST /api/auth/register, /api/auth/check-credentials, /api/auth/check-user,
// /api/auth/resend-verification, /api/auth/logout; GET /api/auth/verify-email
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	registerLimiter := middleware.RateLimit(rdb, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), nil)
	checkLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	resendLimiter := middleware.RateLimit(rdb, 3, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/check-credentials", loginLimiter, m.Handler.CheckCredentials)
	rg.POST("/auth/check-user", checkLimiter, m.Handler.CheckUser)
	rg.GET("/auth/verify-email", verifyLimiter, m.Handler.VerifyEmail)
	rg.POST("/auth/resend-verification", resendLimiter, m.Handler.ResendVerification)
	rg.POST("/auth/logout", m.Handler.Logout)
}

// BuildAuthModule constructs the module from container singletons.
func BuildAuthModule() *AuthModule {
	cfg := container.GetConfig()
	svc := application.NewAuthService(
		newUserRepo(), newAccountRepo(), newTokenRepo(),
		container.GetJWT(), container.GetMailSender(), cfg.VerifyEmailURL, container.GetLogger(),
	)
	return NewAuthModule(handlers.NewAuthHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure))
}
