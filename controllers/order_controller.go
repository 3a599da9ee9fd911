package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
	"github.com/akaXala/ESCOMIDA/utils"
)

type OrderController struct {
	Svc       *services.OrderService
	ReviewSvc *services.ReviewService
}

func NewOrderController(s *services.OrderService, rs *services.ReviewService) *OrderController {
	return &OrderController{Svc: s, ReviewSvc: rs}
}

// POST /api/ordenes/crear materializes the cart into an order (checkout).
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	orderID, err := h.Svc.Checkout(uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCart):
			resp.NotFound(c, "No hay carrito")
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, "El carrito está vacío")
		default:
			logger.L().Error("checkout failed", zap.Uint("user_id", uid), zap.Error(err))
			resp.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id_pedido": orderID})
}

// GET /api/ordenes/mostrar-todos: the customer's own orders.
func (h *OrderController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		logger.L().Error("list own orders failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, orders)
}

// POST /api/ordenes/mostrar-detalles: lines of one of the user's orders.
func (h *OrderController) Details(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var body struct {
		OrderID uint `json:"id_pedido" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Falta id_pedido")
		return
	}
	items, err := h.Svc.ItemsForUser(uid, body.OrderID)
	if err != nil {
		logger.L().Error("order details failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// GET /api/ordenes/mostrar-pedidos-items: every order with items and the
// owner's phone; the kitchen boards poll this.
func (h *OrderController) ListWithItems(c *gin.Context) {
	orders, err := h.Svc.ListWithItems()
	if err != nil {
		logger.L().Error("list orders with items failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedidos": orders})
}

// GET /api/ordenes/tablero: the per-screen kitchen projection.
func (h *OrderController) Board(c *gin.Context) {
	orders, err := h.Svc.ListWithItems()
	if err != nil {
		logger.L().Error("kitchen board failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tablero": services.ProjectKitchenBoard(orders)})
}

// ---------------- transitions ----------------

func (h *OrderController) transition(c *gin.Context, do func(orderID uint) (*entity.Order, error)) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "ID inválido")
		return
	}
	order, err := do(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "Pedido no encontrado")
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		default:
			logger.L().Error("order transition failed", zap.Uint64("order_id", id), zap.Error(err))
			resp.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": order})
}

// PUT /api/ordenes/cocinando/:id
func (h *OrderController) Accept(c *gin.Context) {
	h.transition(c, func(orderID uint) (*entity.Order, error) {
		return h.Svc.Accept(c.Request.Context(), orderID)
	})
}

// PUT /api/ordenes/listo/:id
func (h *OrderController) Ready(c *gin.Context) {
	h.transition(c, func(orderID uint) (*entity.Order, error) {
		return h.Svc.Complete(c.Request.Context(), orderID)
	})
}

// PUT /api/ordenes/entregado/:id
func (h *OrderController) Deliver(c *gin.Context) {
	h.transition(c, func(orderID uint) (*entity.Order, error) {
		return h.Svc.Deliver(c.Request.Context(), orderID)
	})
}

// PATCH /api/ordenes/cambiar-estado: generic change, allow-list enforced,
// legacy vocabulary accepted.
func (h *OrderController) ChangeStatus(c *gin.Context) {
	var body struct {
		OrderID   uint   `json:"id_pedido" binding:"required"`
		NewStatus string `json:"nuevo_estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Faltan datos")
		return
	}
	order, err := h.Svc.ChangeStatus(c.Request.Context(), body.OrderID, body.NewStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "Pedido no encontrado")
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "Estado no válido")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.BadRequest(c, err.Error())
		default:
			logger.L().Error("change status failed", zap.Uint("order_id", body.OrderID), zap.Error(err))
			resp.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pedido": order})
}

// DELETE /api/ordenes/cancelar: only while En espera; a missing order is
// success (idempotent cancel).
func (h *OrderController) Cancel(c *gin.Context) {
	var body struct {
		OrderID uint `json:"id_pedido" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Falta id_pedido")
		return
	}
	if err := h.Svc.Cancel(body.OrderID); err != nil {
		if errors.Is(err, services.ErrCancelNotAllowed) {
			resp.BadRequest(c, err.Error())
			return
		}
		logger.L().Error("cancel order failed", zap.Uint("order_id", body.OrderID), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/ordenes/calificar: batch rating, invalid entries skipped.
func (h *OrderController) Rate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "No autenticado")
		return
	}
	var entries []services.RatingIn
	if err := c.ShouldBindJSON(&entries); err != nil {
		resp.BadRequest(c, "Formato inválido")
		return
	}
	if err := h.ReviewSvc.Rate(uid, entries); err != nil {
		logger.L().Error("rate failed", zap.Uint("user_id", uid), zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
