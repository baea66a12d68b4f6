package service

import (
	"errors"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrFavouriteNotFound = errors.New("favourite not found")
	ErrAlreadyFavourite  = errors.New("review is already in favourites")
)

type FavouriteService interface {
	Add(email string, reviewID uint) (*model.Favourite, error)
	List(email string) ([]model.Favourite, error)
	Remove(email string, reviewID uint) error
}

type favouriteService struct {
	favouriteRepo repository.FavouriteRepository
	reviewRepo    repository.ReviewRepository
}

func NewFavouriteService(favouriteRepo repository.FavouriteRepository, reviewRepo repository.ReviewRepository) FavouriteService {
	return &favouriteService{
		favouriteRepo: favouriteRepo,
		reviewRepo:    reviewRepo,
	}
}

func (s *favouriteService) Add(email string, reviewID uint) (*model.Favourite, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	exists, err := s.favouriteRepo.Exists(email, reviewID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavourite
	}

	favourite := &model.Favourite{
		Email:    email,
		ReviewID: reviewID,
	}
	if err := s.favouriteRepo.Create(favourite); err != nil {
		logger.Error("Failed to add favourite", err, map[string]interface{}{
			"email":     email,
			"review_id": reviewID,
		})
		return nil, err
	}

	logger.Info("Favourite added", map[string]interface{}{
		"email":     email,
		"review_id": reviewID,
	})
	return favourite, nil
}

func (s *favouriteService) List(email string) ([]model.Favourite, error) {
	return s.favouriteRepo.FindByEmail(email)
}

func (s *favouriteService) Remove(email string, reviewID uint) error {
	if err := s.favouriteRepo.Delete(email, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFavouriteNotFound
		}
		return err
	}

	logger.Info("Favourite removed", map[string]interface{}{
		"email":     email,
		"review_id": reviewID,
	})
	return nil
}
