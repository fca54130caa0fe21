package main

import (
	"log"
	"net/http"

	_ "nexus/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"nexus/internal/auth"
	"nexus/internal/config"
	"nexus/internal/db"
	"nexus/internal/handler"
	"nexus/internal/model"
	"nexus/internal/repository"
	"nexus/internal/router"
	"nexus/internal/service"
)

// @title Nexus Publishing API
// @version 1.0
// @description Minimal publishing platform: registration, articles and comments with JWT authentication and author-only mutation.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	articleService := service.NewArticleService(articleRepo)
	commentService := service.NewCommentService(articleRepo, commentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Register routes
	router.Register(e, cfg, authHandler, articleHandler, commentHandler)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
