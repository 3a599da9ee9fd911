package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/resp"
	"github.com/akaXala/ESCOMIDA/services"
)

type FoodController struct {
	Svc       *services.FoodService
	ReviewSvc *services.ReviewService
}

func NewFoodController(s *services.FoodService, rs *services.ReviewService) *FoodController {
	return &FoodController{Svc: s, ReviewSvc: rs}
}

// GET /api/alimentos
func (h *FoodController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		logger.L().Error("list food items failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// POST /api/alimentos/filtrar
func (h *FoodController) Filter(c *gin.Context) {
	var body struct {
		Category string `json:"categoria" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Faltan campos obligatorios.")
		return
	}
	items, err := h.Svc.FilterByCategory(body.Category)
	if err != nil {
		logger.L().Error("filter food items failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}

// POST /api/alimentos/mostrar
func (h *FoodController) Show(c *gin.Context) {
	var body struct {
		FoodItemID uint `json:"id_alimento" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Faltan campos obligatorios.")
		return
	}
	item, err := h.Svc.Detail(body.FoodItemID)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.NotFound(c, "Alimento no encontrado")
			return
		}
		logger.L().Error("food detail failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, item)
}

// GET /api/alimentos/calificacion?id_alimento=xx
func (h *FoodController) Rating(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id_alimento"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "Falta id_alimento")
		return
	}
	avg, ok, err := h.ReviewSvc.Average(uint(id))
	if err != nil {
		logger.L().Error("rating lookup failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "promedio": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "promedio": avg})
}

// POST /api/alimentos/calificacion { ids: [1,2,3] }
func (h *FoodController) Ratings(c *gin.Context) {
	var body struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "Faltan ids")
		return
	}
	ratings, err := h.ReviewSvc.Averages(body.IDs)
	if err != nil {
		logger.L().Error("batch ratings failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ratings": ratings})
}

// GET /api/alimentos/mejor-calificados
func (h *FoodController) TopRated(c *gin.Context) {
	items, err := h.ReviewSvc.TopRated(10)
	if err != nil {
		logger.L().Error("top rated failed", zap.Error(err))
		resp.ServerError(c)
		return
	}
	resp.OK(c, items)
}
