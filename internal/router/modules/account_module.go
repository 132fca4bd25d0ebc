package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
)

// AccountModule wires the account surface.
// Protected: GET/PATCH/DELETE /api/account/:accountId
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT(), container.GetConfig().APIKey))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/account/:accountId", m.Handler.Get)
		auth.PATCH("/account/:accountId", m.Handler.Update)
		auth.DELETE("/account/:accountId", m.Handler.Delete)
	}
}

func BuildAccountModule() *AccountModule {
	svc := application.NewAccountService(newAccountRepo(), container.GetLogger())
	return NewAccountModule(handlers.NewAccountHandler(svc, container.GetLogger()))
}
