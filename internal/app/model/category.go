package model

import (
	"time"
)

// Category is a menu category. It stores no item count; the count is
// recomputed against menu_items on every read.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex:idx_categories_name;not null" json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount is the listing row with the derived menu-item count
type CategoryWithCount struct {
	Category
	ItemCount int64 `json:"item_count"`
}

// CreateCategoryRequest is the admin payload for a new category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	ImageURL string `json:"image_url"`
}

// UpdateCategoryRequest patches a category
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=50"`
	ImageURL *string `json:"image_url,omitempty"`
}
