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

type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// Create publishes a community post as the authenticated user
// POST /api/v1/posts
func (ctrl *PostController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid post request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "A caption is required")
		return
	}

	post, err := ctrl.postService.Create(email, req)
	if err != nil {
		log.Error("Failed to create post", err, map[string]interface{}{
			"user_email": email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post published successfully",
		"post":    post,
	})
}

// List returns community posts, newest first. Authenticated callers also get
// liked_by_me on each post.
// GET /api/v1/posts
func (ctrl *PostController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	viewerEmail, _ := middleware.GetUserEmail(c)

	posts, total, err := ctrl.postService.List(page, limit, viewerEmail)
	if err != nil {
		log.Error("Failed to list posts", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
	})
}

// Update edits a post. Only the author or an admin may edit.
// PATCH /api/v1/posts/:id
func (ctrl *PostController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid post ID")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid post details")
		return
	}

	post, err := ctrl.postService.Update(uint(id), email, role == model.RoleAdmin, req)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		if errors.Is(err, service.ErrNotPostOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only edit your own posts")
			return
		}
		log.Error("Failed to update post", err, map[string]interface{}{
			"post_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// Delete removes a post. Only the author or an admin may delete.
// DELETE /api/v1/posts/:id
func (ctrl *PostController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid post ID")
		return
	}

	if err := ctrl.postService.Delete(uint(id), email, role == model.RoleAdmin); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		if errors.Is(err, service.ErrNotPostOwner) {
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "You can only delete your own posts")
			return
		}
		log.Error("Failed to delete post", err, map[string]interface{}{
			"post_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
	})
}

// ToggleLike flips the caller's like on a post
// PATCH /api/v1/posts/like/:id
func (ctrl *PostController) ToggleLike(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid post ID")
		return
	}

	post, liked, err := ctrl.postService.ToggleLike(uint(id), email)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.PostNotFound, "Post not found")
			return
		}
		log.Error("Failed to toggle like", err, map[string]interface{}{
			"post_id": id,
			"email":   email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "toggle like")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"like_count": post.LikeCount,
		"post":       post,
	})
}
