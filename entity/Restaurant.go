package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Cuisine      string  `gorm:"not null" json:"cuisine"`
	Rating       float64 `gorm:"not null" json:"rating"` // 0–5
	DeliveryTime string  `gorm:"not null" json:"deliveryTime"`
	ImageURL     string  `gorm:"not null" json:"imageUrl"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
