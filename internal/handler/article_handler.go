package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexus/internal/auth"
	"nexus/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// CreateArticleRequest represents an article creation request.
type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,min=5"`
	Description string `json:"description" validate:"required,min=10"`
	Body        string `json:"body" validate:"required,min=20"`
}

// UpdateArticleRequest represents a partial article update. Slug and author
// cannot be changed.
type UpdateArticleRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=5"`
	Description *string `json:"description" validate:"omitempty,min=10"`
	Body        *string `json:"body" validate:"omitempty,min=20"`
}

// DeletedArticle is the delete success payload.
type DeletedArticle struct {
	Slug string `json:"slug"`
}

// Create godoc
// @Summary Publish a new article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArticleRequest true "Article fields"
// @Success 201 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	article, err := h.articleService.Create(c.Request().Context(), service.ArticleInput{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: article})
}

// List godoc
// @Summary List all articles, newest first
// @Tags articles
// @Produce json
// @Success 200 {object} DataResponse
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DataResponse{Data: articles})
}

// GetBySlug godoc
// @Summary Get an article with its comments
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	article, err := h.articleService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DataResponse{Data: article})
}

// Update godoc
// @Summary Update an article (author only)
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param request body UpdateArticleRequest true "Fields to overwrite"
// @Success 200 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	article, err := h.articleService.Update(c.Request().Context(), c.Param("slug"), service.ArticleUpdate{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
	}, claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: article})
}

// Delete godoc
// @Summary Delete an article and its comments (author only)
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} DataResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	slug, err := h.articleService.Delete(c.Request().Context(), c.Param("slug"), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: DeletedArticle{Slug: slug}})
}
