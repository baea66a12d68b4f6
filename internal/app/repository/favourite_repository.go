package repository

import (
	"github.com/tastio/tastio-backend/internal/app/model"
	"gorm.io/gorm"
)

type FavouriteRepository interface {
	Create(favourite *model.Favourite) error
	FindByEmail(email string) ([]model.Favourite, error)
	Exists(email string, reviewID uint) (bool, error)
	Delete(email string, reviewID uint) error
}

type favouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) Create(favourite *model.Favourite) error {
	return r.db.Create(favourite).Error
}

func (r *favouriteRepository) FindByEmail(email string) ([]model.Favourite, error) {
	var favourites []model.Favourite
	err := r.db.Where("email = ?", email).
		Preload("Review").
		Preload("Review.Restaurant").
		Order("created_at DESC").
		Find(&favourites).Error
	if err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *favouriteRepository) Exists(email string, reviewID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favourite{}).
		Where("email = ? AND review_id = ?", email, reviewID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favouriteRepository) Delete(email string, reviewID uint) error {
	result := r.db.Where("email = ? AND review_id = ?", email, reviewID).
		Delete(&model.Favourite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
