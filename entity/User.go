package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // ปลอดภัย
	Address  string `json:"address"`

	// Relations — preload เฉพาะตอนจำเป็น
	Cart   *Cart   `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order `json:"-"`
}
