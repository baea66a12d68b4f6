package repository

import (
	"github.com/tastio/tastio-backend/internal/app/model"
	"gorm.io/gorm"
)

// PlatformTotals are the raw aggregate counts behind the admin dashboard
type PlatformTotals struct {
	TotalUsers          int64 `json:"total_users"`
	TotalSellers        int64 `json:"total_sellers"`
	TotalRestaurants    int64 `json:"total_restaurants"`
	PendingRestaurants  int64 `json:"pending_restaurants"`
	VerifiedRestaurants int64 `json:"verified_restaurants"`
	RejectedRestaurants int64 `json:"rejected_restaurants"`
	TotalMenuItems      int64 `json:"total_menu_items"`
	TotalReviews        int64 `json:"total_reviews"`
	TotalPosts          int64 `json:"total_posts"`
}

type StatsRepository interface {
	Totals() (*PlatformTotals, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Totals() (*PlatformTotals, error) {
	totals := &PlatformTotals{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totals.TotalUsers, r.db.Model(&model.User{})},
		{&totals.TotalSellers, r.db.Model(&model.User{}).Where("role = ?", model.RoleSeller)},
		{&totals.TotalRestaurants, r.db.Model(&model.Restaurant{})},
		{&totals.PendingRestaurants, r.db.Model(&model.Restaurant{}).Where("status = ?", model.RestaurantStatusPending)},
		{&totals.VerifiedRestaurants, r.db.Model(&model.Restaurant{}).Where("status = ?", model.RestaurantStatusVerified)},
		{&totals.RejectedRestaurants, r.db.Model(&model.Restaurant{}).Where("status = ?", model.RestaurantStatusRejected)},
		{&totals.TotalMenuItems, r.db.Model(&model.MenuItem{})},
		{&totals.TotalReviews, r.db.Model(&model.Review{})},
		{&totals.TotalPosts, r.db.Model(&model.Post{})},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return totals, nil
}
