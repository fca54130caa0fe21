package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"nexus/internal/auth"
	"nexus/internal/errors"
	"nexus/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a comment creation request.
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// DeletedComment is the delete success payload.
type DeletedComment struct {
	ID uuid.UUID `json:"id"`
}

// ListForArticle godoc
// @Summary List an article's comments, newest first
// @Tags comments
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} DataResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments [get]
func (h *CommentHandler) ListForArticle(c echo.Context) error {
	comments, err := h.commentService.ListForArticle(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, DataResponse{Data: comments})
}

// Create godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param request body CreateCommentRequest true "Comment body"
// @Success 201 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	comment, err := h.commentService.Create(c.Request().Context(), c.Param("slug"), req.Body, claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, DataResponse{Data: comment})
}

// Delete godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Param id path string true "Comment ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid comment ID",
			Code:  "INVALID_UUID",
		})
	}

	id, err := h.commentService.Delete(c.Request().Context(), c.Param("slug"), commentID, claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: DeletedComment{ID: id}})
}
