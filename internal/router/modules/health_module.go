package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
)

// HealthModule exposes GET /api/health, unauthenticated.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Health)
}

func BuildHealthModule() *HealthModule {
	svc := application.NewOrderService(newOrderRepo(), container.GetLogger())
	return NewHealthModule(handlers.NewHealthHandler(container.GetPGPool(), svc, container.GetLogger()))
}
