package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
	"github.com/akaXala/ESCOMIDA/utils"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

type favoriteReq struct {
	FoodItemID uint `json:"id_alimento" binding:"required"`
}

// POST /api/favoritos/add: insert-or-ignore.
func (h *FavoriteController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body favoriteReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Falta id_alimento")
		return
	}
	if err := h.Svc.Add(uid, body.FoodItemID); err != nil {
		logger.L().Error("add favorite failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/favoritos/remove
func (h *FavoriteController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body favoriteReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Falta id_alimento")
		return
	}
	if err := h.Svc.Remove(uid, body.FoodItemID); err != nil {
		logger.L().Error("remove favorite failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/favoritos/check
func (h *FavoriteController) Check(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "isFavorite": false})
		return
	}
	var body favoriteReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "isFavorite": false})
		return
	}
	isFavorite, err := h.Svc.Check(uid, body.FoodItemID)
	if err != nil {
		logger.L().Error("check favorite failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "isFavorite": isFavorite})
}

// GET /api/favoritos
func (h *FavoriteController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	items, err := h.Svc.List(uid)
	if err != nil {
		logger.L().Error("list favorites failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}
