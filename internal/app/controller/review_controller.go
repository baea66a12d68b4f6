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

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// Create posts a new review as the authenticated user
// POST /api/v1/reviews
func (ctrl *ReviewController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review details")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
		return
	}

	review, err := ctrl.reviewService.Create(email, req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		if errors.Is(err, service.ErrReviewedMenuGap) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Menu item does not belong to the reviewed restaurant")
			return
		}
		log.Error("Failed to create review", err, map[string]interface{}{
			"reviewer_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review posted successfully",
		"review":  review,
	})
}

// Latest returns the most recent reviews for the home page
// GET /api/v1/latest-reviews
func (ctrl *ReviewController) Latest(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reviews, err := ctrl.reviewService.Latest()
	if err != nil {
		log.Error("Failed to load latest reviews", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
	})
}

// Search returns reviews matching the filters, paginated
// GET /api/v1/all-reviews
func (ctrl *ReviewController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var q model.ReviewListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid query parameters")
		return
	}

	reviews, total, err := ctrl.reviewService.Search(q)
	if err != nil {
		log.Error("Review search failed", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"page":    q.Page,
		"limit":   q.Limit,
	})
}

// Get returns a single review
// GET /api/v1/reviews/:id
func (ctrl *ReviewController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	review, err := ctrl.reviewService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		log.Error("Failed to get review", err, map[string]interface{}{
			"review_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review": review,
	})
}

// Mine returns the authenticated user's reviews, paginated
// GET /api/v1/my-reviews
func (ctrl *ReviewController) Mine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, total, err := ctrl.reviewService.MyReviews(email, page, limit)
	if err != nil {
		log.Error("Failed to load user reviews", err, map[string]interface{}{
			"email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}

// Update edits an existing review. Only the author or an admin may edit.
// PATCH /api/v1/reviews/:id
func (ctrl *ReviewController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid review details")
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "Rating must be between 1 and 5")
		return
	}

	review, err := ctrl.reviewService.Update(uint(id), email, role == model.RoleAdmin, req)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		if errors.Is(err, service.ErrNotReviewOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only edit your own reviews")
			return
		}
		log.Error("Failed to update review", err, map[string]interface{}{
			"review_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// Delete removes a review. Only the author or an admin may delete.
// DELETE /api/v1/reviews/:id
func (ctrl *ReviewController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	if err := ctrl.reviewService.Delete(uint(id), email, role == model.RoleAdmin); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		if errors.Is(err, service.ErrNotReviewOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only delete your own reviews")
			return
		}
		log.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review deleted successfully",
	})
}

// Leaderboard returns the most active reviewers
// GET /api/v1/leaderboard?limit=
func (ctrl *ReviewController) Leaderboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := ctrl.reviewService.Leaderboard(limit)
	if err != nil {
		log.Error("Failed to build leaderboard", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "leaderboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": entries,
	})
}
