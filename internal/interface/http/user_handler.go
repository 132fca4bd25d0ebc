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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// mustOwnUser enforces that session callers only touch their own user.
// API-key callers are trusted automation and skip the check.
func mustOwnUser(c *gin.Context, userID string) bool {
	if middleware.IsAPIKey(c) {
		return true
	}
	if c.GetString(middleware.CtxUserID) != userID {
		response.ErrorCode(c, http.StatusForbidden, "FORBIDDEN", "not allowed", nil)
		return false
	}
	return true
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,pwd"`
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.Param("userId")
	if !mustOwnUser(c, uid) {
		return
	}
	p, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":    userView(p.User),
		"account": accountView(p.Account),
		"members": memberViews(p.Members),
	}, "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.Param("userId")
	if !mustOwnUser(c, uid) {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Name == nil && req.Email == nil {
		response.Error(c, http.StatusBadRequest, "nothing to update", nil)
		return
	}
	res, err := h.Svc.UpdateProfile(c.Request.Context(), uid, req.Name, req.Email)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":         userView(res.User),
		"emailChanged": res.EmailChanged,
		"emailSent":    res.EmailSent,
	}, "profile updated", nil)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid := c.Param("userId")
	if !mustOwnUser(c, uid) {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"changed": true}, "password changed", nil)
}
