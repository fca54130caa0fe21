package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexus/internal/errors"
	"nexus/internal/model"
	"nexus/internal/repository"
)

// ArticleInput carries the fields required to publish an article.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
}

// ArticleUpdate carries optional fields; nil means "leave unchanged". Slug
// and author are never part of an update.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
}

// ArticleService handles article operations. Concurrent updates of the same
// article are last-write-wins; there is no optimistic locking.
type ArticleService interface {
	Create(ctx context.Context, input ArticleInput, authorID uuid.UUID) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	Update(ctx context.Context, slug string, input ArticleUpdate, requesterID uuid.UUID) (*model.Article, error)
	Delete(ctx context.Context, slug string, requesterID uuid.UUID) (string, error)
}

type articleService struct {
	articles repository.ArticleRepository
	now      func() time.Time
}

// NewArticleService creates a new article service.
func NewArticleService(articles repository.ArticleRepository) ArticleService {
	return &articleService{
		articles: articles,
		now:      time.Now,
	}
}

// Create persists a new article with a slug derived from the title and the
// creation timestamp, then reloads it so the author is populated.
func (s *articleService) Create(ctx context.Context, input ArticleInput, authorID uuid.UUID) (*model.Article, error) {
	article := &model.Article{
		ID:          uuid.New(),
		Title:       input.Title,
		Slug:        GenerateSlug(input.Title, s.now()),
		Description: input.Description,
		Body:        input.Body,
		AuthorID:    authorID,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	created, err := s.articles.FindBySlug(ctx, article.Slug)
	if err != nil {
		return nil, fmt.Errorf("reload article: %w", err)
	}
	return created, nil
}

// List returns all articles, newest first. Public.
func (s *articleService) List(ctx context.Context) ([]model.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetBySlug returns an article with its comments and their authors. Public.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	article, err := s.articles.FindBySlugWithComments(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return article, nil
}

// Update overwrites the provided fields after the ownership check. Slug and
// author stay untouched even when the title changes.
func (s *articleService) Update(ctx context.Context, slug string, input ArticleUpdate, requesterID uuid.UUID) (*model.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	if err := requireOwner(article, requesterID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Description != nil {
		article.Description = *input.Description
	}
	if input.Body != nil {
		article.Body = *input.Body
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return article, nil
}

// Delete removes the article and cascades to its comments after the
// ownership check. Returns the deleted slug.
func (s *articleService) Delete(ctx context.Context, slug string, requesterID uuid.UUID) (string, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrArticleNotFound
		}
		return "", fmt.Errorf("find article: %w", err)
	}

	if err := requireOwner(article, requesterID); err != nil {
		return "", err
	}

	if err := s.articles.DeleteWithComments(ctx, article); err != nil {
		return "", fmt.Errorf("delete article: %w", err)
	}
	return article.Slug, nil
}
