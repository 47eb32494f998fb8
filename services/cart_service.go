package services

import (
	"errors"

	"github.com/Dibyashritarout/ByteBites-main/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository // validate เมนู + ราคา
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

// ----- View DTOs -----

type CartLine struct {
	MenuItemID   uint    `json:"menuItemId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"` // ราคาปัจจุบันจาก catalog ไม่ใช่ snapshot
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
	RestaurantID uint    `json:"restaurantId"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// Get คืนตะกร้าพร้อมยอดรวม — คำนวณใหม่ทุกครั้งจากราคาปัจจุบัน ไม่ cache
func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartLine, 0, len(c.Items))}
	for _, it := range c.Items {
		sub := it.MenuItem.Price * float64(it.Quantity)
		view.Items = append(view.Items, CartLine{
			MenuItemID:   it.MenuItemID,
			Name:         it.MenuItem.Name,
			Price:        it.MenuItem.Price,
			Quantity:     it.Quantity,
			Subtotal:     sub,
			RestaurantID: it.MenuItem.RestaurantID,
		})
		view.Total += sub
	}
	return view, nil
}

// Add ใส่เมนูลงตะกร้า — เมนูเดิมบวก quantity (merge ไม่ใช่ replace)
func (s *CartService) Add(userID, menuItemID uint, qty int) (*CartView, error) {
	if qty <= 0 {
		qty = 1
	}

	// ตรวจเมนูมีจริงใน catalog ก่อน
	if _, err := s.CatalogRepo.GetMenuItem(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		return s.CartRepo.UpsertItem(tx, c.ID, menuItemID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// UpdateQty ตั้งค่า quantity ตรง ๆ (ไม่บวกเพิ่ม)
// qty <= 0 → ถอด line ออกจากตะกร้าเลย
func (s *CartService) UpdateQty(userID, menuItemID uint, qty int) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if _, err := s.CartRepo.FindItem(tx, c.ID, menuItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if qty <= 0 {
			return s.CartRepo.RemoveItem(tx, c.ID, menuItemID)
		}
		return s.CartRepo.SetQuantity(tx, c.ID, menuItemID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Remove ลบ line ออก — ลบของที่ไม่มีอยู่ไม่ถือเป็น error (idempotent)
func (s *CartService) Remove(userID, menuItemID uint) (*CartView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if c.ID == 0 {
			return nil // ยังไม่เคยมีตะกร้า
		}
		return s.CartRepo.RemoveItem(tx, c.ID, menuItemID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
