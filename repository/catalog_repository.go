package repository

import (
	"github.com/Dibyashritarout/ByteBites-main/entity"

	"gorm.io/gorm"
)

// Catalog เป็น read-only หลัง seed — ไม่มี method เขียนที่นี่
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("id").Find(&rests).Error
	return rests, err
}

func (r *CatalogRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// restaurantID = 0 → ทุกร้าน; ร้านไม่มีเมนูได้ slice ว่าง ไม่ใช่ error
func (r *CatalogRepository) ListMenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	db := r.DB.Order("id")
	if restaurantID != 0 {
		db = db.Where("restaurant_id = ?", restaurantID)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r *CatalogRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}
