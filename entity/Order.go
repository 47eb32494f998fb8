package entity

import (
	"time"

	"gorm.io/gorm"
)

// สร้างครั้งเดียวตอน checkout — แก้ได้เฉพาะ Status
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	DeliveryAddress string      `gorm:"not null" json:"deliveryAddress"`
	TotalAmount     float64     `gorm:"not null" json:"totalAmount"`
	Status          OrderStatus `gorm:"not null" json:"status"`
	OrderDate       time.Time   `gorm:"not null" json:"orderDate"`

	// preload แค่ตอน detail
	OrderItems []OrderItem `json:"-"`
}
