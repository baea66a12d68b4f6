package service

import (
	"errors"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("post belongs to another user")
)

type PostService interface {
	Create(userEmail string, req model.CreatePostRequest) (*model.Post, error)
	GetByID(id uint) (*model.Post, error)
	List(page, limit int, viewerEmail string) ([]model.Post, int64, error)
	Update(id uint, email string, isAdmin bool, req model.UpdatePostRequest) (*model.Post, error)
	Delete(id uint, email string, isAdmin bool) error
	ToggleLike(id uint, email string) (*model.Post, bool, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) Create(userEmail string, req model.CreatePostRequest) (*model.Post, error) {
	post := &model.Post{
		UserEmail: userEmail,
		Caption:   req.Caption,
		ImageURL:  req.ImageURL,
	}

	if err := s.postRepo.Create(post); err != nil {
		logger.Error("Failed to create post", err, map[string]interface{}{
			"user_email": userEmail,
		})
		return nil, err
	}

	logger.Info("Post created", map[string]interface{}{
		"post_id":    post.ID,
		"user_email": userEmail,
	})
	return post, nil
}

func (s *postService) GetByID(id uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) List(page, limit int, viewerEmail string) ([]model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.postRepo.List((page-1)*limit, limit, viewerEmail)
}

func (s *postService) Update(id uint, email string, isAdmin bool, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if !isAdmin && post.UserEmail != email {
		logger.Warn("Post update denied: not the owner", map[string]interface{}{
			"post_id":    id,
			"caller":     email,
			"user_email": post.UserEmail,
		})
		return nil, ErrNotPostOwner
	}

	if req.Caption != nil {
		post.Caption = *req.Caption
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}

	logger.Info("Post updated", map[string]interface{}{
		"post_id": post.ID,
		"caller":  email,
	})
	return post, nil
}

func (s *postService) Delete(id uint, email string, isAdmin bool) error {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if !isAdmin && post.UserEmail != email {
		logger.Warn("Post delete denied: not the owner", map[string]interface{}{
			"post_id":    id,
			"caller":     email,
			"user_email": post.UserEmail,
		})
		return ErrNotPostOwner
	}

	if err := s.postRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Post deleted", map[string]interface{}{
		"post_id": id,
		"caller":  email,
	})
	return nil
}

// ToggleLike flips this user's like on the post and returns the refreshed
// post plus whether it ended up liked.
func (s *postService) ToggleLike(id uint, email string) (*model.Post, bool, error) {
	if _, err := s.postRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrPostNotFound
		}
		return nil, false, err
	}

	liked, err := s.postRepo.ToggleLike(id, email)
	if err != nil {
		logger.Error("Failed to toggle like", err, map[string]interface{}{
			"post_id": id,
			"email":   email,
		})
		return nil, false, err
	}

	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, false, err
	}

	logger.Info("Post like toggled", map[string]interface{}{
		"post_id": id,
		"email":   email,
		"liked":   liked,
	})
	return post, liked, nil
}
