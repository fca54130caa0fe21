package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexus/internal/errors"
)

// DataResponse wraps every successful payload except register/login, which
// return the token envelope instead.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// AuthResponse is the register/login success envelope. The client persists
// both fields locally and attaches the token to subsequent requests.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func validationError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_FAILED",
	})
}

func unauthenticated() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "missing or invalid token",
		Code:  "UNAUTHENTICATED",
	})
}

func bindError() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "VALIDATION_FAILED",
	})
}
