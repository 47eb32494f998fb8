package entity

import (
	"gorm.io/gorm"
)

// ห้ามซ้ำ: เมนูเดียวกันในตะกร้าเดียวกันต้อง merge เป็นแถวเดียว
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_menu_item"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId" gorm:"uniqueIndex:idx_cart_menu_item"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`
}
