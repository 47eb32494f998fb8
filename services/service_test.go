package services

import (
	"fmt"
	"testing"

	"github.com/Dibyashritarout/ByteBites-main/entity"
	"github.com/Dibyashritarout/ByteBites-main/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// in-memory DB แยกตามชื่อเทส — ":memory:" เฉย ๆ จะได้ DB คนละตัวต่อ connection ใน pool
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

// ร้านสองร้าน: ร้านแรกมีของ 10 กับ 5 บาท อีกร้านไว้เทสข้ามร้าน
type catalogFixture struct {
	RestA entity.Restaurant
	ItemA entity.MenuItem // 10.0
	ItemB entity.MenuItem // 5.0
	RestB entity.Restaurant
	ItemC entity.MenuItem // 8.0
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()
	var f catalogFixture

	f.RestA = entity.Restaurant{Name: "Spice Villa", Cuisine: "North Indian", Rating: 4.5, DeliveryTime: "30-40 min", ImageURL: "a.jpg"}
	require.NoError(t, db.Create(&f.RestA).Error)
	f.RestB = entity.Restaurant{Name: "Dragon Wok", Cuisine: "Chinese", Rating: 4.2, DeliveryTime: "25-35 min", ImageURL: "b.jpg"}
	require.NoError(t, db.Create(&f.RestB).Error)

	f.ItemA = entity.MenuItem{Name: "Paneer Butter Masala", Price: 10.0, IsVeg: true, RestaurantID: f.RestA.ID}
	require.NoError(t, db.Create(&f.ItemA).Error)
	f.ItemB = entity.MenuItem{Name: "Butter Chicken", Price: 5.0, RestaurantID: f.RestA.ID}
	require.NoError(t, db.Create(&f.ItemB).Error)
	f.ItemC = entity.MenuItem{Name: "Hakka Noodles", Price: 8.0, IsVeg: true, RestaurantID: f.RestB.ID}
	require.NoError(t, db.Create(&f.ItemC).Error)

	return f
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewCatalogRepository(db),
	)
}
