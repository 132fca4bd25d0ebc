package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/internal/interface/middleware"
	"github.com/orderdeck/orderdeck/pkg/response"
	"github.com/orderdeck/orderdeck/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type createOrderRequest struct {
	AccountID    string                       `json:"accountId"`
	CustomerName string                       `json:"customerName" binding:"required"`
	OrderType    string                       `json:"orderType" binding:"required,ordertype"`
	Items        []application.OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

// callerAccountID resolves the account scope for the request. Session callers
// are pinned to their token's account; api-key automation names the account
// explicitly.
func callerAccountID(c *gin.Context, explicit string) (string, bool) {
	if middleware.IsAPIKey(c) {
		if explicit == "" {
			response.Error(c, http.StatusBadRequest, "accountId is required for api-key requests", nil)
			return "", false
		}
		return explicit, true
	}
	aid := c.GetString(middleware.CtxAccountID)
	if aid == "" {
		response.ErrorCode(c, http.StatusForbidden, "FORBIDDEN", "session has no account", nil)
		return "", false
	}
	return aid, true
}

func (h *OrderHandler) List(c *gin.Context) {
	aid, ok := callerAccountID(c, c.Query("accountId"))
	if !ok {
		return
	}
	orders, err := h.Svc.List(c.Request.Context(), aid, c.Query("status"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", gin.H{"count": len(orders)})
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	aid, ok := callerAccountID(c, req.AccountID)
	if !ok {
		return
	}
	order, err := h.Svc.Create(c.Request.Context(), application.CreateOrderInput{
		AccountID:    aid,
		CustomerName: req.CustomerName,
		OrderType:    req.OrderType,
		Items:        req.Items,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, order, "order created", nil)
}

// mustOwnOrder loads the order and rejects session callers reaching across
// accounts. Returns nil when a response has already been written.
func (h *OrderHandler) mustOwnOrder(c *gin.Context, orderID string) bool {
	if middleware.IsAPIKey(c) {
		return true
	}
	o, err := h.Svc.Get(c.Request.Context(), orderID)
	if err != nil {
		fail(c, h.Logger, err)
		return false
	}
	if o.AccountID != c.GetString(middleware.CtxAccountID) {
		response.ErrorCode(c, http.StatusForbidden, "FORBIDDEN", "not allowed", nil)
		return false
	}
	return true
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if !h.mustOwnOrder(c, id) {
		return
	}
	order, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, order, "order status updated", nil)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnOrder(c, id) {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "order deleted", nil)
}
