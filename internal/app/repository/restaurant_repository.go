package repository

import (
	"strings"

	"github.com/tastio/tastio-backend/internal/app/model"
	"gorm.io/gorm"
)

type RestaurantRepository interface {
	Create(restaurant *model.Restaurant) error
	FindByID(id uint) (*model.Restaurant, error)
	FindByOwnerEmail(email string) (*model.Restaurant, error)
	List(status model.RestaurantStatus, search string) ([]model.Restaurant, error)
	Update(restaurant *model.Restaurant) error
	Delete(id uint) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(restaurant *model.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByOwnerEmail returns the owner's application regardless of status.
// The unique index on owner_email keeps it to at most one row.
func (r *restaurantRepository) FindByOwnerEmail(email string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.Where("owner_email = ?", email).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// List filters by status and a case-insensitive substring over name and
// location. Empty filters return everything, newest first.
func (r *restaurantRepository) List(status model.RestaurantStatus, search string) ([]model.Restaurant, error) {
	query := r.db.Model(&model.Restaurant{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}

	var restaurants []model.Restaurant
	if err := query.Order("created_at DESC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Update(restaurant *model.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *restaurantRepository) Delete(id uint) error {
	return r.db.Delete(&model.Restaurant{}, id).Error
}
