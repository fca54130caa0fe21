package repository

import (
	"context"

	"gorm.io/gorm"

	"nexus/internal/model"
)

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	List(ctx context.Context) ([]model.Article, error)
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
	FindBySlugWithComments(ctx context.Context, slug string) (*model.Article, error)
	DeleteWithComments(ctx context.Context, article *model.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// List returns all articles with authors, newest first.
func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBySlugWithComments loads the article plus its comments and their
// authors, comments newest first.
func (r *articleRepository) FindBySlugWithComments(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Where("slug = ?", slug).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// DeleteWithComments removes the article and all its comments in one
// transaction so a failure leaves no orphans and no half-deleted article.
func (r *articleRepository) DeleteWithComments(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(article).Error
	})
}
