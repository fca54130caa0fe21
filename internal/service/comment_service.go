package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexus/internal/errors"
	"nexus/internal/model"
	"nexus/internal/repository"
)

// CommentService handles comment operations. Creating and listing comments is
// open to any authenticated user; deletion is owner-only.
type CommentService interface {
	Create(ctx context.Context, slug, body string, authorID uuid.UUID) (*model.Comment, error)
	ListForArticle(ctx context.Context, slug string) ([]model.Comment, error)
	Delete(ctx context.Context, slug string, commentID, requesterID uuid.UUID) (uuid.UUID, error)
}

type commentService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(articles repository.ArticleRepository, comments repository.CommentRepository) CommentService {
	return &commentService{
		articles: articles,
		comments: comments,
	}
}

// Create adds a comment to the article behind slug, then reloads it so the
// author is populated.
func (s *commentService) Create(ctx context.Context, slug, body string, authorID uuid.UUID) (*model.Comment, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	comment := &model.Comment{
		ID:        uuid.New(),
		Body:      body,
		AuthorID:  authorID,
		ArticleID: article.ID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	created, err := s.comments.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment: %w", err)
	}
	return created, nil
}

// ListForArticle returns an article's comments with authors, newest first.
func (s *commentService) ListForArticle(ctx context.Context, slug string) ([]model.Comment, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	comments, err := s.comments.ListForArticle(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment after verifying it belongs to the stated article
// and the requester is its author. Returns the deleted comment id.
func (s *commentService) Delete(ctx context.Context, slug string, commentID, requesterID uuid.UUID) (uuid.UUID, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, errors.ErrArticleNotFound
		}
		return uuid.Nil, fmt.Errorf("find article: %w", err)
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return uuid.Nil, errors.ErrCommentNotFound
		}
		return uuid.Nil, fmt.Errorf("find comment: %w", err)
	}

	if comment.ArticleID != article.ID {
		return uuid.Nil, errors.ErrCommentMismatch
	}

	if err := requireOwner(comment, requesterID); err != nil {
		return uuid.Nil, err
	}

	if err := s.comments.Delete(ctx, comment); err != nil {
		return uuid.Nil, fmt.Errorf("delete comment: %w", err)
	}
	return comment.ID, nil
}
