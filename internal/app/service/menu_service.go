package service

import (
	"errors"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrNotMenuOwner          = errors.New("menu item belongs to another seller")
	ErrRestaurantNotVerified = errors.New("seller has no verified restaurant")
)

type MenuService interface {
	Create(sellerEmail string, req model.CreateMenuItemRequest) (*model.MenuItem, error)
	GetByID(id uint) (*model.MenuItem, error)
	Search(q model.MenuListQuery) ([]model.MenuItem, int64, error)
	ListBySeller(sellerEmail string) ([]model.MenuItem, error)
	Update(id uint, sellerEmail string, isAdmin bool, req model.UpdateMenuItemRequest) (*model.MenuItem, error)
	Delete(id uint, sellerEmail string, isAdmin bool) error
}

type menuService struct {
	menuRepo       repository.MenuRepository
	restaurantRepo repository.RestaurantRepository
}

func NewMenuService(menuRepo repository.MenuRepository, restaurantRepo repository.RestaurantRepository) MenuService {
	return &menuService{
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Create adds a menu item under the seller's own verified restaurant. The
// restaurant id is derived from the caller, never taken from the request.
func (s *menuService) Create(sellerEmail string, req model.CreateMenuItemRequest) (*model.MenuItem, error) {
	restaurant, err := s.restaurantRepo.FindByOwnerEmail(sellerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotVerified
		}
		return nil, err
	}
	if restaurant.Status != model.RestaurantStatusVerified {
		return nil, ErrRestaurantNotVerified
	}

	item := &model.MenuItem{
		Name:         req.Name,
		Price:        req.Price,
		Category:     req.Category,
		PhotoURL:     req.PhotoURL,
		Description:  req.Description,
		SellerEmail:  sellerEmail,
		RestaurantID: restaurant.ID,
	}

	if err := s.menuRepo.Create(item); err != nil {
		logger.Error("Failed to create menu item", err, map[string]interface{}{
			"seller_email": sellerEmail,
			"name":         req.Name,
		})
		return nil, err
	}

	logger.Info("Menu item created", map[string]interface{}{
		"menu_id":       item.ID,
		"restaurant_id": restaurant.ID,
		"seller_email":  sellerEmail,
	})
	return item, nil
}

func (s *menuService) GetByID(id uint) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) Search(q model.MenuListQuery) ([]model.MenuItem, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
	return s.menuRepo.Search(q)
}

func (s *menuService) ListBySeller(sellerEmail string) ([]model.MenuItem, error) {
	return s.menuRepo.FindBySellerEmail(sellerEmail)
}

func (s *menuService) Update(id uint, sellerEmail string, isAdmin bool, req model.UpdateMenuItemRequest) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	if !isAdmin && item.SellerEmail != sellerEmail {
		logger.Warn("Menu update denied: not the owner", map[string]interface{}{
			"menu_id":      id,
			"caller":       sellerEmail,
			"seller_email": item.SellerEmail,
		})
		return nil, ErrNotMenuOwner
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.PhotoURL != nil {
		item.PhotoURL = *req.PhotoURL
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}

	logger.Info("Menu item updated", map[string]interface{}{
		"menu_id": item.ID,
		"caller":  sellerEmail,
	})
	return item, nil
}

func (s *menuService) Delete(id uint, sellerEmail string, isAdmin bool) error {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	if !isAdmin && item.SellerEmail != sellerEmail {
		logger.Warn("Menu delete denied: not the owner", map[string]interface{}{
			"menu_id":      id,
			"caller":       sellerEmail,
			"seller_email": item.SellerEmail,
		})
		return ErrNotMenuOwner
	}

	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Menu item deleted", map[string]interface{}{
		"menu_id": id,
		"caller":  sellerEmail,
	})
	return nil
}
