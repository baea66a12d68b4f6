package model

import (
	"time"

	"gorm.io/gorm"
)

// RestaurantStatus is the state of a seller application.
// pending -> verified (admin approval, promotes the owner to seller)
// pending -> rejected (admin rejection with a reason)
// rejected -> pending (re-application overwrites the same row)
type RestaurantStatus string

const (
	RestaurantStatusPending  RestaurantStatus = "pending"
	RestaurantStatusVerified RestaurantStatus = "verified"
	RestaurantStatusRejected RestaurantStatus = "rejected"
)

type Restaurant struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	OwnerEmail      string           `gorm:"uniqueIndex:idx_restaurants_owner_email;not null" json:"owner_email"` // one application per owner
	Name            string           `gorm:"not null" json:"name"`
	Location        string           `gorm:"index" json:"location"`
	PhotoURL        string           `json:"photo_url"`
	Description     string           `gorm:"type:text" json:"description"`
	Status          RestaurantStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	RejectionReason string           `gorm:"type:text" json:"rejection_reason,omitempty"`
	VerifiedAt      *time.Time       `json:"verified_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// ApplyRestaurantRequest is the seller application payload.
// The owner email always comes from the verified token, never the body.
type ApplyRestaurantRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Location    string `json:"location" binding:"required"`
	PhotoURL    string `json:"photo_url"`
	Description string `json:"description"`
}

// RejectRestaurantRequest carries the admin rejection reason
type RejectRestaurantRequest struct {
	Reason string `json:"reason" binding:"required,min=5"`
}

// RestaurantListQuery filters the public restaurant listing
type RestaurantListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending verified rejected"`
	Search string `form:"search"`
}
