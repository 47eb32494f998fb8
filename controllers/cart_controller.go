package controllers

import (
	"errors"
	"strconv"

	"github.com/Dibyashritarout/ByteBites-main/pkg/resp"
	"github.com/Dibyashritarout/ByteBites-main/services"
	"github.com/Dibyashritarout/ByteBites-main/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

type addToCartReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"` // ไม่ส่งมา = 1
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.Add(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

type updateCartReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// PUT /api/cart/update
func (h *CartController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateQty(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, "item not in cart")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/remove/:itemId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	cart, err := h.Svc.Remove(uid, uint(itemID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
