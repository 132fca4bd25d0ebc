package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
)

// UserModule wires the user profile surface.
// Protected: GET/PATCH /api/user/:userId, POST /api/user/:userId/change-password
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT(), container.GetConfig().APIKey))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/user/:userId", m.Handler.GetProfile)
		auth.PATCH("/user/:userId", m.Handler.UpdateProfile)
		auth.POST("/user/:userId/change-password", m.Handler.ChangePassword)
	}
}

func BuildUserModule() *UserModule {
	cfg := container.GetConfig()
	svc := application.NewUserService(
		newUserRepo(), newAccountRepo(), newTokenRepo(),
		container.GetMailSender(), cfg.VerifyEmailURL, container.GetLogger(),
	)
	return NewUserModule(handlers.NewUserHandler(svc, container.GetLogger()))
}
