package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/container"
	handlers "github.com/orderdeck/orderdeck/internal/interface/http"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
)

// OrderModule wires the order surface.
// Protected: GET/POST /api/orders, PATCH/DELETE /api/orders/:id
type OrderModule struct {
	Handler *handlers.OrderHandler
}

func NewOrderModule(h *handlers.OrderHandler) *OrderModule {
	return &OrderModule{Handler: h}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT(), container.GetConfig().APIKey))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/orders", m.Handler.List)
		auth.POST("/orders", m.Handler.Create)
		auth.PATCH("/orders/:id", m.Handler.UpdateStatus)
		auth.DELETE("/orders/:id", m.Handler.Delete)
	}
}

func BuildOrderModule() *OrderModule {
	svc := application.NewOrderService(newOrderRepo(), container.GetLogger())
	return NewOrderModule(handlers.NewOrderHandler(svc, container.GetLogger()))
}
