package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/pkg/response"
)

type HealthHandler struct {
	Pool   *pgxpool.Pool
	Orders *application.OrderService
	Logger *logrus.Logger
}

func NewHealthHandler(pool *pgxpool.Pool, orders *application.OrderService, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Pool: pool, Orders: orders, Logger: logger}
}

// Health pings the database and counts orders as a cheap read check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.Pool.Ping(ctx); err != nil {
		h.Logger.WithError(err).Error("health: database unreachable")
		response.Error(c, http.StatusServiceUnavailable, "database unreachable", nil)
		return
	}
	count, err := h.Orders.Count(ctx)
	if err != nil {
		h.Logger.WithError(err).Error("health: order count failed")
		response.Error(c, http.StatusServiceUnavailable, "database read failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"orderCount": count,
		"timestamp":  time.Now().UTC(),
	}, "ok", nil)
}
