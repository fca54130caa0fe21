package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "nexus/internal/errors"
	"nexus/internal/model"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]model.Article, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlugWithComments(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) DeleteWithComments(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func TestArticleService_Create(t *testing.T) {
	authorID := uuid.New()
	ts := time.UnixMilli(1700000000000)

	mockRepo := new(MockArticleRepository)
	var created *model.Article
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Article)
		}).
		Return(nil)
	mockRepo.On("FindBySlug", mock.Anything, "hello-world-1700000000000").
		Return(&model.Article{Slug: "hello-world-1700000000000", AuthorID: authorID, Author: model.User{ID: authorID, Username: "alice"}}, nil)

	svc := &articleService{
		articles: mockRepo,
		now:      func() time.Time { return ts },
	}

	article, err := svc.Create(context.Background(), ArticleInput{
		Title:       "Hello World!!",
		Description: "ten chars min",
		Body:        "twenty characters minimum body",
	}, authorID)

	assert.NoError(t, err)
	assert.Equal(t, "hello-world-1700000000000", article.Slug)
	assert.Equal(t, "alice", article.Author.Username)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, "Hello World!!", created.Title)
	mockRepo.AssertExpectations(t)
}

func TestArticleService_Update(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	str := func(s string) *string { return &s }

	tests := []struct {
		name          string
		requesterID   uuid.UUID
		input         ArticleUpdate
		setupMock     func(*MockArticleRepository)
		expectedError error
		verify        func(*testing.T, *model.Article)
	}{
		{
			name:        "author overwrites fields, slug untouched",
			requesterID: ownerID,
			input:       ArticleUpdate{Title: str("Brand New Title"), Body: str("a body comfortably over twenty characters")},
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{
					Title:    "Hello World!!",
					Slug:     "hello-world-1700000000000",
					Body:     "twenty characters minimum body",
					AuthorID: ownerID,
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)
			},
			verify: func(t *testing.T, a *model.Article) {
				assert.Equal(t, "Brand New Title", a.Title)
				assert.Equal(t, "hello-world-1700000000000", a.Slug)
				assert.Equal(t, ownerID, a.AuthorID)
			},
		},
		{
			name:        "non-author is forbidden",
			requesterID: strangerID,
			input:       ArticleUpdate{Title: str("Hijacked Title")},
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{
					Slug:     "hello-world-1700000000000",
					AuthorID: ownerID,
				}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:        "missing article",
			requesterID: ownerID,
			input:       ArticleUpdate{Title: str("Whatever Title")},
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrArticleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockArticleRepository)
			tt.setupMock(mockRepo)

			svc := NewArticleService(mockRepo)
			article, err := svc.Update(context.Background(), "hello-world-1700000000000", tt.input, tt.requesterID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, article)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				tt.verify(t, article)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestArticleService_Delete(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name          string
		requesterID   uuid.UUID
		setupMock     func(*MockArticleRepository)
		expectedError error
	}{
		{
			name:        "author deletes, comments cascade",
			requesterID: ownerID,
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{
					Slug:     "hello-world-1700000000000",
					AuthorID: ownerID,
				}, nil)
				m.On("DeleteWithComments", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)
			},
		},
		{
			name:        "non-author is forbidden",
			requesterID: strangerID,
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(&model.Article{
					Slug:     "hello-world-1700000000000",
					AuthorID: ownerID,
				}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:        "missing article",
			requesterID: ownerID,
			setupMock: func(m *MockArticleRepository) {
				m.On("FindBySlug", mock.Anything, "hello-world-1700000000000").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrArticleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockArticleRepository)
			tt.setupMock(mockRepo)

			svc := NewArticleService(mockRepo)
			slug, err := svc.Delete(context.Background(), "hello-world-1700000000000", tt.requesterID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, slug)
				mockRepo.AssertNotCalled(t, "DeleteWithComments", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "hello-world-1700000000000", slug)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestArticleService_GetBySlug(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	mockRepo.On("FindBySlugWithComments", mock.Anything, "missing-slug").Return(nil, gorm.ErrRecordNotFound)

	svc := NewArticleService(mockRepo)
	article, err := svc.GetBySlug(context.Background(), "missing-slug")

	assert.Equal(t, apperrors.ErrArticleNotFound, err)
	assert.Nil(t, article)
	mockRepo.AssertExpectations(t)
}
