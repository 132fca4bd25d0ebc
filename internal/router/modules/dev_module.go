package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
)

// DevModule exposes GET /api/dev/reset-db. Only added to the registry in
// development mode.
type DevModule struct {
	Handler *handlers.DevHandler
}

func NewDevModule(h *handlers.DevHandler) *DevModule {
	return &DevModule{Handler: h}
}

func (m *DevModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.GET("/dev/reset-db", limiter, m.Handler.ResetDB)
}

func BuildDevModule() *DevModule {
	svc := application.NewSeedService(
		newUserRepo(), newAccountRepo(), newOrderRepo(), newMaintenanceRepo(),
		container.GetConfig().IsDevelopment(), container.GetLogger(),
	)
	return NewDevModule(handlers.NewDevHandler(svc, container.GetLogger()))
}
