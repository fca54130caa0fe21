package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"nexus/internal/auth"
	"nexus/internal/config"
	"nexus/internal/errors"
	"nexus/internal/handler"
)

// Register wires routes and middleware. Read endpoints for articles and
// comments are public; every mutation goes through the JWT middleware first,
// so unauthenticated requests never reach the data layer.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	articleHandler *handler.ArticleHandler,
	commentHandler *handler.CommentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/articles", articleHandler.List)
	e.GET("/articles/:slug", articleHandler.GetBySlug)
	e.GET("/articles/:slug/comments", commentHandler.ListForArticle)

	// Secured routes (require a valid bearer token)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHENTICATED",
			})
		},
	}))

	secured.GET("/auth/profile", authHandler.Profile)
	secured.PUT("/auth/profile", authHandler.UpdateProfile)

	secured.POST("/articles", articleHandler.Create)
	secured.PUT("/articles/:slug", articleHandler.Update)
	secured.DELETE("/articles/:slug", articleHandler.Delete)

	secured.POST("/articles/:slug/comments", commentHandler.Create)
	secured.DELETE("/articles/:slug/comments/:id", commentHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
