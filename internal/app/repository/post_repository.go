package repository

import (
	"github.com/tastio/tastio-backend/internal/app/model"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	List(offset, limit int, viewerEmail string) ([]model.Post, int64, error)
	Update(post *model.Post) error
	Delete(id uint) error
	ToggleLike(postID uint, email string) (bool, error)
	IsLiked(postID uint, email string) (bool, error)
	CountAll() (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts, newest first. When viewerEmail is set,
// LikedByMe is filled from that viewer's like rows.
func (r *postRepository) List(offset, limit int, viewerEmail string) ([]model.Post, int64, error) {
	var total int64
	if err := r.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := r.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	if viewerEmail != "" && len(posts) > 0 {
		ids := make([]uint, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}

		var likedIDs []uint
		err := r.db.Model(&model.PostLike{}).
			Where("email = ? AND post_id IN ?", viewerEmail, ids).
			Pluck("post_id", &likedIDs).Error
		if err != nil {
			return nil, 0, err
		}

		liked := make(map[uint]bool, len(likedIDs))
		for _, id := range likedIDs {
			liked[id] = true
		}
		for i := range posts {
			posts[i].LikedByMe = liked[posts[i].ID]
		}
	}

	return posts, total, nil
}

func (r *postRepository) Update(post *model.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&model.Post{}, id).Error
}

// ToggleLike adds or removes this email's like. The composite unique index on
// post_likes keeps each liker at most once; the counter moves with the row.
// Returns true when the post ends up liked.
func (r *postRepository) ToggleLike(postID uint, email string) (bool, error) {
	var like model.PostLike
	err := r.db.Where("post_id = ? AND email = ?", postID, email).First(&like).Error

	if err == gorm.ErrRecordNotFound {
		like = model.PostLike{
			PostID: postID,
			Email:  email,
		}
		if err := r.db.Create(&like).Error; err != nil {
			return false, err
		}

		if err := r.db.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			return false, err
		}

		return true, nil
	} else if err != nil {
		return false, err
	}

	if err := r.db.Delete(&like).Error; err != nil {
		return false, err
	}

	if err := r.db.Model(&model.Post{}).
		Where("id = ?", postID).
		UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error; err != nil {
		return false, err
	}

	return false, nil
}

func (r *postRepository) IsLiked(postID uint, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostLike{}).
		Where("post_id = ? AND email = ?", postID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}
