package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexus/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListForArticle(ctx context.Context, articleID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, comment *model.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListForArticle returns an article's comments with authors, newest first.
func (r *commentRepository) ListForArticle(ctx context.Context, articleID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Delete(comment).Error
}
