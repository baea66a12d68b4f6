package model

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	ReviewerEmail string `gorm:"index;not null" json:"reviewer_email"`
	FoodName      string `gorm:"index;not null" json:"food_name"` // denormalized for search
	Rating        int    `gorm:"not null" json:"rating"`          // 1-5
	ReviewText    string `gorm:"type:text" json:"review_text"`

	// A review may reference a catalog dish; free-form reviews leave MenuID nil
	MenuID       *uint       `gorm:"index" json:"menu_id,omitempty"`
	RestaurantID uint        `gorm:"index;not null" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`

	PostedAt  time.Time      `gorm:"index" json:"posted_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate stamps the posting time unless the caller set one (imports)
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.PostedAt.IsZero() {
		r.PostedAt = time.Now()
	}
	return nil
}

// CreateReviewRequest is the reviewer payload. The reviewer email is always
// the verified token email; a client-supplied email is never trusted.
type CreateReviewRequest struct {
	FoodName     string `json:"food_name" binding:"required,min=2,max=100"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText   string `json:"review_text" binding:"required,min=10"`
	MenuID       *uint  `json:"menu_id,omitempty"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

// UpdateReviewRequest patches review text and rating only; the menu-item
// aggregate is not adjusted on update, matching the write-time-only contract
type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" binding:"omitempty,min=10"`
}

// ReviewListQuery filters the public review search
type ReviewListQuery struct {
	Search    string `form:"search"`
	MinRating *int   `form:"minRating" binding:"omitempty,min=1,max=5"`
	Sort      string `form:"sort" binding:"omitempty,oneof=newest oldest rating-asc rating-desc"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}
