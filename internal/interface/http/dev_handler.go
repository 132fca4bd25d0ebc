package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/application"
	"github.com/orderdeck/orderdeck/pkg/response"
)

// DevHandler exposes the destructive reset/seed surface. Only registered in
// development; the service refuses to run otherwise as a second guard.
type DevHandler struct {
	Svc    *application.SeedService
	Logger *logrus.Logger
}

func NewDevHandler(svc *application.SeedService, logger *logrus.Logger) *DevHandler {
	return &DevHandler{Svc: svc, Logger: logger}
}

// ResetDB dispatches on query params:
//
//	?accountId=X  reseed that account with 30 days of demo orders
//	?userId=X     purge everything except that user and its account
//	(none)        wipe all data
func (h *DevHandler) ResetDB(c *gin.Context) {
	res, err := h.Svc.Reset(c.Request.Context(), c.Query("accountId"), c.Query("userId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "reset complete", nil)
}
