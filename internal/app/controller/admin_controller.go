package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tastio/tastio-backend/internal/app/service"
	apperrors "github.com/tastio/tastio-backend/internal/errors"
	"github.com/tastio/tastio-backend/internal/middleware"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Stats returns the dashboard totals and category histogram
// GET /api/v1/admin/stats
func (ctrl *AdminController) Stats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.adminService.Stats()
	if err != nil {
		log.Error("Failed to load platform stats", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "platform stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportStats streams the dashboard numbers as an XLSX workbook
// GET /api/v1/admin/stats/export
func (ctrl *AdminController) ExportStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	data, err := ctrl.adminService.ExportStats()
	if err != nil {
		log.Error("Failed to export platform stats", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "export stats")
		return
	}

	filename := fmt.Sprintf("tastio-stats-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ListUsers returns all users, paginated
// GET /api/v1/admin/users
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	users, total, err := ctrl.adminService.ListUsers(page, limit)
	if err != nil {
		log.Error("Failed to list users", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
	})
}

// UpdateUserRole changes a user's role
// PATCH /api/v1/admin/users/role/:id
func (ctrl *AdminController) UpdateUserRole(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid user ID")
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A role is required")
		return
	}

	user, err := ctrl.adminService.UpdateUserRole(uint(id), req.Role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Role must be user, seller or admin")
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to update user role", err, map[string]interface{}{
			"user_id": id,
			"role":    req.Role,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update user role")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
