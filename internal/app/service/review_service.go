package service

import (
	"errors"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotReviewOwner  = errors.New("review belongs to another user")
	ErrReviewedMenuGap = errors.New("menu item does not belong to the reviewed restaurant")
)

const latestReviewLimit = 6

type ReviewService interface {
	Create(reviewerEmail string, req model.CreateReviewRequest) (*model.Review, error)
	GetByID(id uint) (*model.Review, error)
	Latest() ([]model.Review, error)
	Search(q model.ReviewListQuery) ([]model.Review, int64, error)
	MyReviews(email string, page, limit int) ([]model.Review, int64, error)
	Update(id uint, email string, isAdmin bool, req model.UpdateReviewRequest) (*model.Review, error)
	Delete(id uint, email string, isAdmin bool) error
	Leaderboard(limit int) ([]repository.LeaderboardEntry, error)
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	menuRepo       repository.MenuRepository
	restaurantRepo repository.RestaurantRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	menuRepo repository.MenuRepository,
	restaurantRepo repository.RestaurantRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		menuRepo:       menuRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Create stores the review and, when it targets a menu item, folds the new
// rating into that item's running average. The reviewer identity always comes
// from the authenticated caller.
func (s *reviewService) Create(reviewerEmail string, req model.CreateReviewRequest) (*model.Review, error) {
	if _, err := s.restaurantRepo.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if req.MenuID != nil {
		item, err := s.menuRepo.FindByID(*req.MenuID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, ErrReviewedMenuGap
		}
	}

	review := &model.Review{
		ReviewerEmail: reviewerEmail,
		FoodName:      req.FoodName,
		Rating:        req.Rating,
		ReviewText:    req.ReviewText,
		MenuID:        req.MenuID,
		RestaurantID:  req.RestaurantID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"reviewer_email": reviewerEmail,
			"restaurant_id":  req.RestaurantID,
		})
		return nil, err
	}

	if req.MenuID != nil {
		if err := s.menuRepo.ApplyRating(*req.MenuID, req.Rating); err != nil {
			logger.Error("Failed to apply rating to menu item", err, map[string]interface{}{
				"review_id": review.ID,
				"menu_id":   *req.MenuID,
			})
			return nil, err
		}
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id":      review.ID,
		"reviewer_email": reviewerEmail,
		"restaurant_id":  req.RestaurantID,
		"rating":         req.Rating,
	})
	return review, nil
}

func (s *reviewService) GetByID(id uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Latest() ([]model.Review, error) {
	return s.reviewRepo.Latest(latestReviewLimit)
}

func (s *reviewService) Search(q model.ReviewListQuery) ([]model.Review, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
	return s.reviewRepo.Search(q)
}

func (s *reviewService) MyReviews(email string, page, limit int) ([]model.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.reviewRepo.FindByReviewerEmail(email, (page-1)*limit, limit)
}

// Update edits the text and rating of an existing review. Menu item averages
// are not recomputed on edit; only the initial submission moves them.
func (s *reviewService) Update(id uint, email string, isAdmin bool, req model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if !isAdmin && review.ReviewerEmail != email {
		logger.Warn("Review update denied: not the owner", map[string]interface{}{
			"review_id":      id,
			"caller":         email,
			"reviewer_email": review.ReviewerEmail,
		})
		return nil, ErrNotReviewOwner
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.ReviewText != nil {
		review.ReviewText = *req.ReviewText
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	logger.Info("Review updated", map[string]interface{}{
		"review_id": review.ID,
		"caller":    email,
	})
	return review, nil
}

func (s *reviewService) Delete(id uint, email string, isAdmin bool) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if !isAdmin && review.ReviewerEmail != email {
		logger.Warn("Review delete denied: not the owner", map[string]interface{}{
			"review_id":      id,
			"caller":         email,
			"reviewer_email": review.ReviewerEmail,
		})
		return ErrNotReviewOwner
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id": id,
		"caller":    email,
	})
	return nil
}

func (s *reviewService) Leaderboard(limit int) ([]repository.LeaderboardEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.reviewRepo.Leaderboard(limit)
}
