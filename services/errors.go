package services

import "errors"

// error ประจำระบบ — controller ใช้ errors.Is แปลงเป็น HTTP status
var (
	ErrNotFound         = errors.New("not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrMixedRestaurants = errors.New("cart has items from multiple restaurants")
)
