package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

// POST /api/whatsapp/send-message: direct template send for kitchen/admin.
// The template takes exactly three positional parameters.
func (h *NotificationController) Send(c *gin.Context) {
	var body struct {
		To         string   `json:"to" binding:"required"`
		Parameters []string `json:"parameters" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Parameters) != 3 {
		resp.BadRequest(c, `The "to" number and an array of exactly 3 "parameters" are required.`)
		return
	}
	params := [3]string{body.Parameters[0], body.Parameters[1], body.Parameters[2]}
	if err := h.Svc.Send(c.Request.Context(), body.To, params); err != nil {
		logger.L().Error("send whatsapp message failed", zap.String("to", body.To), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
