package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	IsVeg       bool    `gorm:"not null" json:"isVeg"`
	ImageURL    string  `json:"imageUrl"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อจำเป็น

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
