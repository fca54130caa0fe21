package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateIdentity is returned when a username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already taken")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same error covers unknown emails and password mismatches so the
	// response never reveals which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound is returned when no article matches the given slug.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCommentNotFound is returned when a comment record is absent.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrCommentMismatch is returned when a comment exists but belongs to a
	// different article than the one named in the request.
	ErrCommentMismatch = errors.New("comment does not belong to this article")
	// ErrForbidden is returned when the requester is authenticated but is not
	// the author of the resource being mutated.
	ErrForbidden = errors.New("not the author of this resource")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrDuplicateIdentity:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_IDENTITY")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrArticleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ARTICLE_NOT_FOUND")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case ErrCommentMismatch:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_MISMATCH")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
