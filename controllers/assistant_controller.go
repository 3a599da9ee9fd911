package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/pkg/gemini"
	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
)

type AssistantController struct{ Svc *services.AssistantService }

func NewAssistantController(s *services.AssistantService) *AssistantController {
	return &AssistantController{Svc: s}
}

// POST /api/gemini/assist. Synchronous: the caller waits for the reply and
// an upstream failure is this operation's failure.
func (h *AssistantController) Assist(c *gin.Context) {
	var body struct {
		Message string        `json:"message" binding:"required"`
		History []gemini.Turn `json:"history"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Falta message")
		return
	}
	reply, err := h.Svc.Assist(c.Request.Context(), body.Message, body.History)
	if err != nil {
		logger.L().Error("assistant request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "No se pudo obtener una respuesta del asistente.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "response": reply})
}
