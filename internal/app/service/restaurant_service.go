package service

import (
	"errors"
	"time"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrApplicationExists  = errors.New("an application already exists for this account")
	ErrInvalidTransition  = errors.New("application is not pending")
)

type RestaurantService interface {
	Apply(ownerEmail string, req model.ApplyRestaurantRequest) (*model.Restaurant, error)
	GetByID(id uint) (*model.Restaurant, error)
	GetByOwner(email string) (*model.Restaurant, error)
	List(q model.RestaurantListQuery) ([]model.Restaurant, error)
	Verify(id uint) (*model.Restaurant, error)
	Reject(id uint, reason string) (*model.Restaurant, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	db             *gorm.DB
}

func NewRestaurantService(restaurantRepo repository.RestaurantRepository, db *gorm.DB) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		db:             db,
	}
}

// Apply creates or re-activates a seller application.
//
// State machine per owner email: no application -> create pending;
// rejected -> overwrite the same row back to pending (same id, fresh fields);
// pending or verified -> reject the request, never a second row.
func (s *restaurantService) Apply(ownerEmail string, req model.ApplyRestaurantRequest) (*model.Restaurant, error) {
	existing, err := s.restaurantRepo.FindByOwnerEmail(ownerEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to look up existing application", err, map[string]interface{}{
			"owner_email": ownerEmail,
		})
		return nil, err
	}

	if existing == nil {
		restaurant := &model.Restaurant{
			OwnerEmail:  ownerEmail,
			Name:        req.Name,
			Location:    req.Location,
			PhotoURL:    req.PhotoURL,
			Description: req.Description,
			Status:      model.RestaurantStatusPending,
		}
		if err := s.restaurantRepo.Create(restaurant); err != nil {
			return nil, err
		}

		logger.Info("Seller application created", map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"owner_email":   ownerEmail,
		})
		return restaurant, nil
	}

	if existing.Status != model.RestaurantStatusRejected {
		logger.Warn("Duplicate seller application", map[string]interface{}{
			"owner_email": ownerEmail,
			"status":      existing.Status,
		})
		return nil, ErrApplicationExists
	}

	// Re-application after rejection updates in place
	existing.Name = req.Name
	existing.Location = req.Location
	existing.PhotoURL = req.PhotoURL
	existing.Description = req.Description
	existing.Status = model.RestaurantStatusPending
	existing.RejectionReason = ""

	if err := s.restaurantRepo.Update(existing); err != nil {
		return nil, err
	}

	logger.Info("Rejected application re-submitted", map[string]interface{}{
		"restaurant_id": existing.ID,
		"owner_email":   ownerEmail,
	})
	return existing, nil
}

func (s *restaurantService) GetByID(id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) GetByOwner(email string) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByOwnerEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

func (s *restaurantService) List(q model.RestaurantListQuery) ([]model.Restaurant, error) {
	return s.restaurantRepo.List(model.RestaurantStatus(q.Status), q.Search)
}

// Verify approves a pending application and promotes the owner to seller.
// Both writes run in one transaction so a failed promotion rolls the
// restaurant back to pending instead of leaving the pair inconsistent.
func (s *restaurantService) Verify(id uint) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if restaurant.Status != model.RestaurantStatusPending {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Restaurant{}).
			Where("id = ?", restaurant.ID).
			Updates(map[string]interface{}{
				"status":           model.RestaurantStatusVerified,
				"verified_at":      now,
				"rejection_reason": "",
			}).Error; err != nil {
			return err
		}

		result := tx.Model(&model.User{}).
			Where("email = ?", restaurant.OwnerEmail).
			Update("role", model.RoleSeller)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("Restaurant verification transaction failed", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"owner_email":   restaurant.OwnerEmail,
		})
		return nil, err
	}

	restaurant.Status = model.RestaurantStatusVerified
	restaurant.VerifiedAt = &now
	restaurant.RejectionReason = ""

	logger.Info("Restaurant verified and owner promoted to seller", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"owner_email":   restaurant.OwnerEmail,
	})
	return restaurant, nil
}

// Reject moves a pending application to rejected with a reason. There is no
// verified -> rejected transition.
func (s *restaurantService) Reject(id uint, reason string) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if restaurant.Status != model.RestaurantStatusPending {
		return nil, ErrInvalidTransition
	}

	restaurant.Status = model.RestaurantStatusRejected
	restaurant.RejectionReason = reason

	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, err
	}

	logger.Info("Seller application rejected", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"owner_email":   restaurant.OwnerEmail,
		"reason":        reason,
	})
	return restaurant, nil
}
