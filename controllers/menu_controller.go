package controllers

import (
	"errors"
	"strconv"

	"github.com/Dibyashritarout/ByteBites-main/pkg/resp"
	"github.com/Dibyashritarout/ByteBites-main/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu-items?restaurant_id=
func (h *MenuController) List(c *gin.Context) {
	var restaurantID uint
	if q := c.Query("restaurant_id"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			resp.BadRequest(c, "invalid restaurant_id")
			return
		}
		restaurantID = uint(id)
	}

	items, err := h.Svc.ListMenuItems(restaurantID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.GetMenuItem(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /api/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}
