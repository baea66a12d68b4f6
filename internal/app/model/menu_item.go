package model

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Price        float64     `gorm:"not null" json:"price"`
	Category     string      `gorm:"index;not null" json:"category"` // category name, counted per category at read time
	PhotoURL     string      `json:"photo_url"`
	Description  string      `gorm:"type:text" json:"description"`
	SellerEmail  string      `gorm:"index;not null" json:"seller_email"`
	RestaurantID uint        `gorm:"index;not null" json:"restaurant_id"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`

	// Rating aggregate. Mutated only by the single-statement running-mean
	// update issued at review creation, never recomputed from scratch.
	ReviewCount   int     `gorm:"default:0" json:"review_count"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// CreateMenuItemRequest is the seller payload for a new dish
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	PhotoURL    string  `json:"photo_url"`
	Description string  `json:"description"`
}

// UpdateMenuItemRequest patches an existing dish; nil fields are left alone
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// MenuListQuery filters the public catalog listing
type MenuListQuery struct {
	Search   string   `form:"search"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=newest price-asc price-desc rating-desc"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}
