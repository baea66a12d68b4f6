package model

import (
	"time"
)

// Favourite bookmarks a review for a user. The composite unique index keeps
// one bookmark per (email, review) pair.
type Favourite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"not null;index:idx_fav_email_review,unique" json:"email"`
	ReviewID  uint      `gorm:"not null;index:idx_fav_email_review,unique" json:"review_id"`
	Review    *Review   `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favourite) TableName() string {
	return "favourites"
}

// AddFavouriteRequest references the review to bookmark
type AddFavouriteRequest struct {
	ReviewID uint `json:"review_id" binding:"required"`
}
