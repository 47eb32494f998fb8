package controllers

import (
	"errors"
	"strconv"

	"github.com/Dibyashritarout/ByteBites-main/pkg/resp"
	"github.com/Dibyashritarout/ByteBites-main/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /api/restaurants/:id
func (h *RestaurantController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	r, err := h.Svc.GetRestaurant(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /api/restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := h.Svc.ListMenuItems(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
