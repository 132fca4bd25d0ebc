package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/pkg/response"
	"github.com/orderdeck/orderdeck/pkg/validation"
)

type AuthHandler struct {
	Svc          *application.AuthService
	Logger       *logrus.Logger
	CookieDomain string
	CookieSecure bool
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, CookieDomain: cookieDomain, CookieSecure: cookieSecure}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type resendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"user":      userView(res.User),
		"account":   accountView(res.Account),
		"emailSent": res.EmailSent,
	}, "registered, verification email sent", nil)
}

// CheckCredentials is the login endpoint: validates credentials and issues a
// session token, both in the body and as the session_token cookie.
func (h *AuthHandler) CheckCredentials(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetCookie("session_token", res.Token, maxAge, "/", h.CookieDomain, h.CookieSecure, true)
	response.Success(c, http.StatusOK, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
		"user":      userView(res.User),
		"account":   accountView(res.Account),
	}, "login successful", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("session_token", "", -1, "/", h.CookieDomain, h.CookieSecure, true)
	response.Success[any](c, http.StatusOK, gin.H{"loggedOut": true}, "logged out", nil)
}

// CheckUser answers whether the credentials belong to an unverified user.
// The login page uses it to decide whether to offer a resend.
func (h *AuthHandler) CheckUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	unverified, err := h.Svc.CheckUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unverified": unverified}, "checked", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "missing token", nil)
		return
	}
	if err := h.Svc.VerifyEmail(c.Request.Context(), token); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "email verified", nil)
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sent, err := h.Svc.ResendVerification(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"emailSent": sent}, "verification email requested", nil)
}
