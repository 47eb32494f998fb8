package services

import (
	"testing"
	"time"

	"github.com/Dibyashritarout/ByteBites-main/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := newOrderService(db)

	_, err := svc.Checkout(testUserID, "221B Baker Street")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// ledger ต้องไม่ขยับ
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutRequiresAddress(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)

	_, err = svc.Checkout(testUserID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	// {itemA: 10.0 x2} + {itemB: 5.0 x1} → 25.0
	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)
	_, err = cartSvc.Add(testUserID, f.ItemB.ID, 1)
	require.NoError(t, err)

	order, err := svc.Checkout(testUserID, "221B Baker Street")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, f.RestA.ID, order.RestaurantID)
	assert.Equal(t, 25.0, order.TotalAmount)
	require.Len(t, order.OrderItems, 2)

	prices := map[uint]float64{}
	for _, oi := range order.OrderItems {
		prices[oi.MenuItemID] = oi.PriceAtOrder
	}
	assert.Equal(t, 10.0, prices[f.ItemA.ID])
	assert.Equal(t, 5.0, prices[f.ItemB.ID])

	// ตะกร้าต้องว่างหลัง checkout
	view, err := cartSvc.Get(testUserID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// ราคาเมนูเปลี่ยนทีหลัง → ออเดอร์เก่าต้องไม่สะเทือน
	require.NoError(t, db.Model(&entity.MenuItem{}).
		Where("id = ?", f.ItemA.ID).Update("price", 99.0).Error)

	detail, err := svc.DetailForUser(testUserID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, detail.TotalAmount)
	for _, oi := range detail.Items {
		if oi.MenuItemID == f.ItemA.ID {
			assert.Equal(t, 10.0, oi.PriceAtOrder)
		}
	}
}

func TestCheckoutMixedRestaurants(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)
	_, err = cartSvc.Add(testUserID, f.ItemC.ID, 1) // คนละร้าน
	require.NoError(t, err)

	_, err = svc.Checkout(testUserID, "221B Baker Street")
	assert.ErrorIs(t, err, ErrMixedRestaurants)

	// ไม่มี partial order และตะกร้าอยู่ครบ
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	view, err := cartSvc.Get(testUserID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
}

func TestCheckoutMenuItemGone(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)
	_, err = cartSvc.Add(testUserID, f.ItemB.ID, 1)
	require.NoError(t, err)

	// เมนูหายไปจาก catalog หลังจากอยู่ในตะกร้าแล้ว
	require.NoError(t, db.Unscoped().Delete(&entity.MenuItem{}, f.ItemB.ID).Error)

	_, err = svc.Checkout(testUserID, "221B Baker Street")
	assert.ErrorIs(t, err, ErrItemNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSecondCheckoutSeesEmptyCart(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)

	_, err = svc.Checkout(testUserID, "221B Baker Street")
	require.NoError(t, err)

	_, err = svc.Checkout(testUserID, "221B Baker Street")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := newOrderService(db)

	old := entity.Order{
		UserID: testUserID, RestaurantID: f.RestA.ID, DeliveryAddress: "a",
		TotalAmount: 10, Status: entity.StatusDelivered,
		OrderDate: time.Now().Add(-48 * time.Hour),
	}
	recent := entity.Order{
		UserID: testUserID, RestaurantID: f.RestA.ID, DeliveryAddress: "b",
		TotalAmount: 20, Status: entity.StatusPending,
		OrderDate: time.Now(),
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	orders, err := svc.ListForUser(testUserID, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, recent.ID, orders[0].ID)
	assert.Equal(t, old.ID, orders[1].ID)
}

func TestOrdersScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(testUserID, "221B Baker Street")
	require.NoError(t, err)

	// user อื่นต้องมองไม่เห็น
	_, err = svc.DetailForUser(42, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	orders, err := svc.ListForUser(42, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	_, err := cartSvc.Add(testUserID, f.ItemA.ID, 2)
	require.NoError(t, err)
	order, err := svc.Checkout(testUserID, "221B Baker Street")
	require.NoError(t, err)

	var gotOrderID uint
	var gotStatus entity.OrderStatus
	svc.OnStatusChange = func(orderID uint, status entity.OrderStatus) {
		gotOrderID = orderID
		gotStatus = status
	}

	// ค่านอกชุด enum ต้องโดนปัด
	err = svc.UpdateStatus(order.ID, entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// ออเดอร์ที่ไม่มีจริง
	err = svc.UpdateStatus(9999, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.UpdateStatus(order.ID, entity.StatusOnTheWay))
	assert.Equal(t, order.ID, gotOrderID)
	assert.Equal(t, entity.StatusOnTheWay, gotStatus)

	// เปลี่ยนแค่ status — field อื่นห้ามขยับ
	detail, err := svc.DetailForUser(testUserID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnTheWay, detail.Status)
	assert.Equal(t, 20.0, detail.TotalAmount)
	assert.Equal(t, "221B Baker Street", detail.DeliveryAddress)
}
