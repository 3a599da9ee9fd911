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

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /api/alimentos/anadir: add a customized line to the cart.
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Faltan campos obligatorios.")
		return
	}
	stacked, err := h.Svc.Add(uid, &req)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.NotFound(c, "Alimento no encontrado")
			return
		}
		logger.L().Error("add to cart failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	status := http.StatusCreated
	if stacked {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"success": true, "stacked": stacked})
}

// GET /api/carrito/items
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	items, err := h.Svc.ListItems(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoCart) {
			resp.NotFound(c, "No se encontró un carrito para el usuario.")
			return
		}
		logger.L().Error("list cart items failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// GET /api/carrito/count: cart badge.
func (h *CartController) Count(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	count, err := h.Svc.Count(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoCart) {
			resp.NotFound(c, "No se encontró un carrito para el usuario.")
			return
		}
		logger.L().Error("cart count failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

type itemIDReq struct {
	ItemID uint `json:"id_item" binding:"required"`
}

// POST /api/carrito/items/increment
func (h *CartController) Increment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body itemIDReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "id_item requerido")
		return
	}
	item, err := h.Svc.Increment(uid, body.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, "Item no encontrado")
			return
		}
		logger.L().Error("increment item failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cantidad": item.Quantity, "precio_final": item.FinalPrice})
}

// POST /api/carrito/items/decrement: at quantity 1 the line is deleted.
func (h *CartController) Decrement(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body itemIDReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "id_item requerido")
		return
	}
	item, err := h.Svc.Decrement(uid, body.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, "Item no encontrado")
			return
		}
		logger.L().Error("decrement item failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cantidad": item.Quantity, "precio_final": item.FinalPrice})
}

// DELETE /api/carrito/items/delete
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body itemIDReq
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "id_item requerido")
		return
	}
	if err := h.Svc.RemoveItem(uid, body.ItemID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, "Item no encontrado")
			return
		}
		logger.L().Error("remove item failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
