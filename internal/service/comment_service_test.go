package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "nexus/internal/errors"
	"nexus/internal/model"
)

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListForArticle(ctx context.Context, articleID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func TestCommentService_Create(t *testing.T) {
	authorID := uuid.New()
	articleID := uuid.New()
	commentID := uuid.New()

	t.Run("successful comment", func(t *testing.T) {
		mockArticles := new(MockArticleRepository)
		mockComments := new(MockCommentRepository)

		mockArticles.On("FindBySlug", mock.Anything, "hello-world-1700000000000").
			Return(&model.Article{ID: articleID, Slug: "hello-world-1700000000000"}, nil)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
		mockComments.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(&model.Comment{ID: commentID, Body: "great post", AuthorID: authorID, ArticleID: articleID, Author: model.User{Username: "bob"}}, nil)

		svc := NewCommentService(mockArticles, mockComments)
		comment, err := svc.Create(context.Background(), "hello-world-1700000000000", "great post", authorID)

		assert.NoError(t, err)
		assert.Equal(t, articleID, comment.ArticleID)
		assert.Equal(t, "bob", comment.Author.Username)
		mockArticles.AssertExpectations(t)
		mockComments.AssertExpectations(t)
	})

	t.Run("missing article persists nothing", func(t *testing.T) {
		mockArticles := new(MockArticleRepository)
		mockComments := new(MockCommentRepository)

		mockArticles.On("FindBySlug", mock.Anything, "no-such-slug").Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockArticles, mockComments)
		comment, err := svc.Create(context.Background(), "no-such-slug", "great post", authorID)

		assert.Equal(t, apperrors.ErrArticleNotFound, err)
		assert.Nil(t, comment)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentService_ListForArticle(t *testing.T) {
	articleID := uuid.New()

	t.Run("missing article", func(t *testing.T) {
		mockArticles := new(MockArticleRepository)
		mockComments := new(MockCommentRepository)

		mockArticles.On("FindBySlug", mock.Anything, "no-such-slug").Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockArticles, mockComments)
		comments, err := svc.ListForArticle(context.Background(), "no-such-slug")

		assert.Equal(t, apperrors.ErrArticleNotFound, err)
		assert.Nil(t, comments)
	})

	t.Run("comments returned", func(t *testing.T) {
		mockArticles := new(MockArticleRepository)
		mockComments := new(MockCommentRepository)

		mockArticles.On("FindBySlug", mock.Anything, "hello-world-1700000000000").
			Return(&model.Article{ID: articleID}, nil)
		mockComments.On("ListForArticle", mock.Anything, articleID).
			Return([]model.Comment{{Body: "newest"}, {Body: "older"}}, nil)

		svc := NewCommentService(mockArticles, mockComments)
		comments, err := svc.ListForArticle(context.Background(), "hello-world-1700000000000")

		assert.NoError(t, err)
		assert.Len(t, comments, 2)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	articleID := uuid.New()
	otherArticleID := uuid.New()
	commentID := uuid.New()

	tests := []struct {
		name          string
		requesterID   uuid.UUID
		setupMock     func(*MockArticleRepository, *MockCommentRepository)
		expectedError error
	}{
		{
			name:        "author deletes own comment",
			requesterID: ownerID,
			setupMock: func(ma *MockArticleRepository, mc *MockCommentRepository) {
				ma.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{ID: articleID}, nil)
				mc.On("FindByID", mock.Anything, commentID).Return(&model.Comment{ID: commentID, AuthorID: ownerID, ArticleID: articleID}, nil)
				mc.On("Delete", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
			},
		},
		{
			name:        "comment belongs to a different article",
			requesterID: ownerID,
			setupMock: func(ma *MockArticleRepository, mc *MockCommentRepository) {
				ma.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{ID: articleID}, nil)
				mc.On("FindByID", mock.Anything, commentID).Return(&model.Comment{ID: commentID, AuthorID: ownerID, ArticleID: otherArticleID}, nil)
			},
			expectedError: apperrors.ErrCommentMismatch,
		},
		{
			name:        "non-author is forbidden",
			requesterID: strangerID,
			setupMock: func(ma *MockArticleRepository, mc *MockCommentRepository) {
				ma.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{ID: articleID}, nil)
				mc.On("FindByID", mock.Anything, commentID).Return(&model.Comment{ID: commentID, AuthorID: ownerID, ArticleID: articleID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:        "missing comment",
			requesterID: ownerID,
			setupMock: func(ma *MockArticleRepository, mc *MockCommentRepository) {
				ma.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{ID: articleID}, nil)
				mc.On("FindByID", mock.Anything, commentID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCommentNotFound,
		},
		{
			name:        "missing article",
			requesterID: ownerID,
			setupMock: func(ma *MockArticleRepository, mc *MockCommentRepository) {
				ma.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrArticleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockArticles := new(MockArticleRepository)
			mockComments := new(MockCommentRepository)
			tt.setupMock(mockArticles, mockComments)

			svc := NewCommentService(mockArticles, mockComments)
			id, err := svc.Delete(context.Background(), "hello-world-1700000000000", commentID, tt.requesterID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Equal(t, uuid.Nil, id)
				mockComments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, commentID, id)
			}

			mockArticles.AssertExpectations(t)
			mockComments.AssertExpectations(t)
		})
	}
}
