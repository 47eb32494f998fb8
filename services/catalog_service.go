package services

import (
	"errors"

	"github.com/Dibyashritarout/ByteBites-main/entity"
	"github.com/Dibyashritarout/ByteBites-main/repository"

	"gorm.io/gorm"
)

// CatalogService อ่านอย่างเดียว — ร้าน/เมนู/หมวดหมู่ seed ครั้งเดียวตอน start
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListRestaurants() ([]entity.Restaurant, error) {
	return s.Repo.ListRestaurants()
}

func (s *CatalogService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.GetRestaurant(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *CatalogService) ListMenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListMenuItems(restaurantID)
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}
