package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/service"
	apperrors "github.com/tastio/tastio-backend/internal/errors"
	"github.com/tastio/tastio-backend/internal/middleware"
)

type FavouriteController struct {
	favouriteService service.FavouriteService
}

func NewFavouriteController(favouriteService service.FavouriteService) *FavouriteController {
	return &FavouriteController{
		favouriteService: favouriteService,
	}
}

// Add saves a review to the caller's favourites
// POST /api/v1/favourites
func (ctrl *FavouriteController) Add(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req model.AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A review ID is required")
		return
	}

	favourite, err := ctrl.favouriteService.Add(email, req.ReviewID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		if errors.Is(err, service.ErrAlreadyFavourite) {
			apperrors.Conflict(c, apperrors.FavouriteAlreadyExists, "This review is already in your favourites")
			return
		}
		log.Error("Failed to add favourite", err, map[string]interface{}{
			"email":     email,
			"review_id": req.ReviewID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add favourite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Added to favourites",
		"favourite": favourite,
	})
}

// List returns the caller's favourites with the underlying reviews
// GET /api/v1/favourites
func (ctrl *FavouriteController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	favourites, err := ctrl.favouriteService.List(email)
	if err != nil {
		log.Error("Failed to list favourites", err, map[string]interface{}{
			"email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favourites": favourites,
		"count":      len(favourites),
	})
}

// Remove deletes a review from the caller's favourites
// DELETE /api/v1/favourites/:reviewId
func (ctrl *FavouriteController) Remove(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	if err := ctrl.favouriteService.Remove(email, uint(reviewID)); err != nil {
		if errors.Is(err, service.ErrFavouriteNotFound) {
			apperrors.NotFound(c, apperrors.FavouriteNotFound, "Favourite not found")
			return
		}
		log.Error("Failed to remove favourite", err, map[string]interface{}{
			"email":     email,
			"review_id": reviewID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "remove favourite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from favourites",
	})
}
