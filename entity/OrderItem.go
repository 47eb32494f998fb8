package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// snapshot ราคา ณ ตอนสั่ง — ราคาบนเมนูเปลี่ยนทีหลังต้องไม่กระทบออเดอร์เก่า
	PriceAtOrder float64 `gorm:"not null" json:"priceAtOrder"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload แค่ตอนต้องการ order detail

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู
}
