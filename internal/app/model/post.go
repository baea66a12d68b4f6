package model

import (
	"time"

	"gorm.io/gorm"
)

// Post is a community feed entry
type Post struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserEmail string `gorm:"index;not null" json:"user_email"`
	Caption   string `gorm:"type:text;not null" json:"caption"`
	ImageURL  string `json:"image_url"`

	// Like counter kept in step with the post_likes rows; the unique index on
	// PostLike guarantees each email is counted at most once
	LikeCount int `gorm:"default:0" json:"like_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Likes []PostLike `gorm:"foreignKey:PostID" json:"-"`

	// Filled per viewer at read time, never stored
	LikedByMe bool `gorm:"-" json:"liked_by_me"`
}

func (Post) TableName() string {
	return "posts"
}

// PostLike is one user's like on one post
type PostLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PostID uint   `gorm:"not null;index:idx_post_email_like,unique" json:"post_id"`
	Email  string `gorm:"not null;index:idx_post_email_like,unique" json:"email"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

// CreatePostRequest is the community post payload
type CreatePostRequest struct {
	Caption  string `json:"caption" binding:"required,min=1,max=2000"`
	ImageURL string `json:"image_url"`
}

// UpdatePostRequest patches a post; nil fields are left alone
type UpdatePostRequest struct {
	Caption  *string `json:"caption,omitempty" binding:"omitempty,min=1,max=2000"`
	ImageURL *string `json:"image_url,omitempty"`
}
