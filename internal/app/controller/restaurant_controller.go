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

type RestaurantController struct {
	restaurantService service.RestaurantService
}

func NewRestaurantController(restaurantService service.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// Apply submits a seller application for the authenticated user
// POST /api/v1/restaurants/apply
func (ctrl *RestaurantController) Apply(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req model.ApplyRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid restaurant application", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid application details")
		return
	}

	restaurant, err := ctrl.restaurantService.Apply(email, req)
	if err != nil {
		if errors.Is(err, service.ErrApplicationExists) {
			apperrors.Conflict(c, apperrors.RestaurantApplicationExists, "An application already exists for this account")
			return
		}
		log.Error("Failed to submit application", err, map[string]interface{}{
			"owner_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "apply restaurant")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Application submitted successfully",
		"restaurant": restaurant,
	})
}

// List returns restaurants, optionally filtered by status and search term
// GET /api/v1/restaurants?status=&search=
func (ctrl *RestaurantController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var q model.RestaurantListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid query parameters")
		return
	}

	restaurants, err := ctrl.restaurantService.List(q)
	if err != nil {
		log.Error("Failed to list restaurants", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list restaurants")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// Get returns a single restaurant
// GET /api/v1/restaurants/:id
func (ctrl *RestaurantController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid restaurant ID")
		return
	}

	restaurant, err := ctrl.restaurantService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		log.Error("Failed to get restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
	})
}

// GetMine returns the authenticated seller's restaurant
// GET /api/v1/seller/restaurant
func (ctrl *RestaurantController) GetMine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	restaurant, err := ctrl.restaurantService.GetByOwner(email)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "No restaurant found for this account")
			return
		}
		log.Error("Failed to get seller restaurant", err, map[string]interface{}{
			"owner_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
	})
}

// Verify approves a pending application and promotes its owner
// PATCH /api/v1/restaurants/verify/:id
func (ctrl *RestaurantController) Verify(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid restaurant ID")
		return
	}

	restaurant, err := ctrl.restaurantService.Verify(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		if errors.Is(err, service.ErrInvalidTransition) {
			apperrors.Conflict(c, apperrors.RestaurantInvalidTransition, "Only pending applications can be verified")
			return
		}
		log.Error("Failed to verify restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.RestaurantVerificationFailed, "Verification failed, please try again")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Restaurant verified successfully",
		"restaurant": restaurant,
	})
}

// Reject declines a pending application with a reason
// PATCH /api/v1/restaurants/reject/:id
func (ctrl *RestaurantController) Reject(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid restaurant ID")
		return
	}

	var req model.RejectRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A rejection reason is required")
		return
	}

	restaurant, err := ctrl.restaurantService.Reject(uint(id), req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			apperrors.NotFound(c, apperrors.RestaurantNotFound, "Restaurant not found")
			return
		}
		if errors.Is(err, service.ErrInvalidTransition) {
			apperrors.Conflict(c, apperrors.RestaurantInvalidTransition, "Only pending applications can be rejected")
			return
		}
		log.Error("Failed to reject restaurant", err, map[string]interface{}{
			"restaurant_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reject restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Application rejected",
		"restaurant": restaurant,
	})
}
