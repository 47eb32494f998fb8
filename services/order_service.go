package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Dibyashritarout/ByteBites-main/entity"
	"github.com/Dibyashritarout/ByteBites-main/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository

	// hook สำหรับ ws hub — ยิงหลังเปลี่ยน status สำเร็จ
	OnStatusChange func(orderID uint, status entity.OrderStatus)
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CatalogRepo: catalogRepo}
}

// Checkout แปลงตะกร้าเป็นออเดอร์แบบ all-or-nothing:
// อ่านตะกร้า → snapshot ราคา → สร้าง order + order items → เคลียร์ตะกร้า
// ทั้งหมดอยู่ใน transaction เดียว — checkout ซ้อนกันตัวที่สองจะเจอตะกร้าว่าง
func (s *OrderService) Checkout(userID uint, deliveryAddress string) (*entity.Order, error) {
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return nil, ErrInvalidInput
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// resolve ราคาปัจจุบันของทุก line — เมนูหายไปแล้ว abort ทั้งออเดอร์
		type line struct {
			menuItemID uint
			qty        int
			price      float64
		}
		var restaurantID uint
		var total float64
		lines := make([]line, 0, len(cart.Items))
		for _, it := range cart.Items {
			m, err := s.CatalogRepo.GetMenuItem(it.MenuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}
				return err
			}
			if restaurantID == 0 {
				restaurantID = m.RestaurantID
			} else if m.RestaurantID != restaurantID {
				return ErrMixedRestaurants
			}
			total += m.Price * float64(it.Quantity)
			lines = append(lines, line{menuItemID: m.ID, qty: it.Quantity, price: m.Price})
		}

		order := entity.Order{
			UserID:          userID,
			RestaurantID:    restaurantID,
			DeliveryAddress: deliveryAddress,
			TotalAmount:     total,
			Status:          entity.StatusPending,
			OrderDate:       time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// ย้ายรายการจาก cart -> order พร้อม snapshot ราคา
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   l.menuItemID,
				Quantity:     l.qty,
				PriceAtOrder: l.price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		// เคลียร์ cart
		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID              uint               `json:"id"`
	RestaurantID    uint               `json:"restaurantId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          entity.OrderStatus `json:"status"`
	OrderDate       time.Time          `json:"orderDate"`
	Items           []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, RestaurantID: o.RestaurantID, DeliveryAddress: o.DeliveryAddress,
		TotalAmount: o.TotalAmount, Status: o.Status, OrderDate: o.OrderDate, Items: items,
	}, nil
}

// UpdateStatus เปลี่ยนได้เฉพาะ status และต้องอยู่ในชุดค่าที่กำหนดเท่านั้น
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatus(tx, orderID, status)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.OnStatusChange != nil {
		s.OnStatusChange(orderID, status)
	}
	return nil
}
