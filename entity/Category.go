package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IconClass string `json:"iconClass"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
