package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CurrentUser returns the verified identity the JWT middleware attached to
// the request context. Handlers on protected routes may rely on it being
// present; a missing or foreign claims type means the route was wired without
// the middleware.
func CurrentUser(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("no verified token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
