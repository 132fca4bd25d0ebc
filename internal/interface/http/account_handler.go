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

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

func mustOwnAccount(c *gin.Context, accountID string) bool {
	if middleware.IsAPIKey(c) {
		return true
	}
	if c.GetString(middleware.CtxAccountID) != accountID {
		response.ErrorCode(c, http.StatusForbidden, "FORBIDDEN", "not allowed", nil)
		return false
	}
	return true
}

type updateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *AccountHandler) Get(c *gin.Context) {
	id := c.Param("accountId")
	if !mustOwnAccount(c, id) {
		return
	}
	detail, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"account": accountView(detail.Account),
		"members": memberViews(detail.Members),
	}, "account", nil)
}

func (h *AccountHandler) Update(c *gin.Context) {
	id := c.Param("accountId")
	if !mustOwnAccount(c, id) {
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	acc, err := h.Svc.UpdateName(c.Request.Context(), id, req.Name)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, accountView(acc), "account updated", nil)
}

// Delete removes the account with all of its users and orders. The session
// cookie is cleared since the caller's user no longer exists afterwards.
func (h *AccountHandler) Delete(c *gin.Context) {
	id := c.Param("accountId")
	if !mustOwnAccount(c, id) {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.Logger, err)
		return
	}
	c.SetCookie("session_token", "", -1, "/", "", false, true)
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
}
