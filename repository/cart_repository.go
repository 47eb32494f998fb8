package repository

import (
	"errors"

	"github.com/Dibyashritarout/ByteBites-main/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ user (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
// อ่านผ่าน tx เสมอ — checkout ต้องเห็นตะกร้า ณ จุดเดียวกับที่มันเขียน
func (r *CartRepository) GetCartWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// สร้างตะกร้าแบบ lazy ตอน add ครั้งแรก
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// เพิ่มหรือรวม line: เมนูเดียวกันในตะกร้าเดียวกัน → บวก quantity ไม่สร้างแถวใหม่
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, menuItemID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := entity.CartItem{CartID: cartID, MenuItemID: menuItemID, Quantity: qty}
	return tx.Create(&row).Error
}

func (r *CartRepository) FindItem(tx *gorm.DB, cartID, menuItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SetQuantity(tx *gorm.DB, cartID, menuItemID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Update("quantity", qty).Error
}

// ลบจริง (Unscoped) — soft delete จะค้าง unique index (cart_id, menu_item_id)
// แล้วทำให้ add เมนูเดิมซ้ำไม่ได้
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, menuItemID uint) error {
	return tx.Unscoped().
		Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

// ล้างทุก line ของ user — ไม่มีตะกร้าก็ถือว่าสำเร็จ (idempotent)
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
