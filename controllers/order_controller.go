package controllers

import (
	"errors"
	"strconv"

	"github.com/Dibyashritarout/ByteBites-main/entity"
	"github.com/Dibyashritarout/ByteBites-main/pkg/resp"
	"github.com/Dibyashritarout/ByteBites-main/services"
	"github.com/Dibyashritarout/ByteBites-main/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type checkoutReq struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
}

// POST /api/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(uid, req.DeliveryAddress)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, "cart is empty")
		case errors.Is(err, services.ErrInvalidInput):
			resp.BadRequest(c, "delivery address is required")
		case errors.Is(err, services.ErrItemNotFound):
			resp.NotFound(c, "menu item no longer available")
		case errors.Is(err, services.ErrMixedRestaurants):
			resp.Conflict(c, "cart has items from multiple restaurants")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{
		"id":              order.ID,
		"items":           order.OrderItems,
		"total":           order.TotalAmount,
		"deliveryAddress": order.DeliveryAddress,
		"status":          order.Status,
	})
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := h.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(uint(id), entity.OrderStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, "invalid order status")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"id": uint(id), "status": req.Status})
}
