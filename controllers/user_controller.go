package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
	"github.com/akaXala/ESCOMIDA/utils"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /api/usuario: first authenticated contact; guarantees the cart exists.
func (h *UserController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	user, err := h.Svc.EnsureProfile(uid)
	if err != nil {
		logger.L().Error("ensure profile failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, user)
}

// POST /api/numero
func (h *UserController) RegisterPhone(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body struct {
		Phone string `json:"numero" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Número inválido.")
		return
	}
	alreadyExists, err := h.Svc.RegisterPhone(uid, body.Phone)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPhone) {
			resp.BadRequest(c, "Número inválido.")
			return
		}
		logger.L().Error("register phone failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "alreadyExists": alreadyExists})
}
