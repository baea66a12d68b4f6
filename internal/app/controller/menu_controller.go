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

type MenuController struct {
	menuService service.MenuService
}

func NewMenuController(menuService service.MenuService) *MenuController {
	return &MenuController{
		menuService: menuService,
	}
}

// Search returns menu items matching the filters, paginated
// GET /api/v1/all-foods
func (ctrl *MenuController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var q model.MenuListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Warn("Invalid menu query", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid query parameters")
		return
	}

	items, total, err := ctrl.menuService.Search(q)
	if err != nil {
		log.Error("Menu search failed", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "search menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  q.Page,
		"limit": q.Limit,
	})
}

// Get returns a single menu item
// GET /api/v1/menu/:id
func (ctrl *MenuController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid menu item ID")
		return
	}

	item, err := ctrl.menuService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		log.Error("Failed to get menu item", err, map[string]interface{}{
			"menu_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item": item,
	})
}

// ListMine returns the authenticated seller's menu items
// GET /api/v1/seller/menu
func (ctrl *MenuController) ListMine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	items, err := ctrl.menuService.ListBySeller(email)
	if err != nil {
		log.Error("Failed to list seller menu", err, map[string]interface{}{
			"seller_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// Create adds a menu item under the caller's verified restaurant
// POST /api/v1/menu
func (ctrl *MenuController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid menu item request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid menu item details")
		return
	}
	if req.Price <= 0 {
		apperrors.BadRequest(c, apperrors.MenuInvalidPrice, "Price must be greater than zero")
		return
	}

	item, err := ctrl.menuService.Create(email, req)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotVerified) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.MenuNotSeller, "A verified restaurant is required to add menu items")
			return
		}
		log.Error("Failed to create menu item", err, map[string]interface{}{
			"seller_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create menu item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu item created successfully",
		"item":    item,
	})
}

// Update edits a menu item owned by the caller
// PATCH /api/v1/menu/:id
func (ctrl *MenuController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid menu item ID")
		return
	}

	var req model.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid menu item details")
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		apperrors.BadRequest(c, apperrors.MenuInvalidPrice, "Price must be greater than zero")
		return
	}

	item, err := ctrl.menuService.Update(uint(id), email, role == model.RoleAdmin, req)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		if errors.Is(err, service.ErrNotMenuOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only edit your own menu items")
			return
		}
		log.Error("Failed to update menu item", err, map[string]interface{}{
			"menu_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item updated successfully",
		"item":    item,
	})
}

// Delete removes a menu item owned by the caller
// DELETE /api/v1/menu/:id
func (ctrl *MenuController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid menu item ID")
		return
	}

	if err := ctrl.menuService.Delete(uint(id), email, role == model.RoleAdmin); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		if errors.Is(err, service.ErrNotMenuOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only delete your own menu items")
			return
		}
		log.Error("Failed to delete menu item", err, map[string]interface{}{
			"menu_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item deleted successfully",
	})
}
