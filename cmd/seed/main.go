// Command seed loads demo users, articles and comments through the service
// layer so slugs, hashes and ownership come out exactly as they would through
// the API. Safe to run repeatedly.
package main

import (
	"context"
	"log"

	"nexus/internal/auth"
	"nexus/internal/config"
	"nexus/internal/db"
	"nexus/internal/errors"
	"nexus/internal/model"
	"nexus/internal/repository"
	"nexus/internal/service"
)

type seedUser struct {
	username string
	email    string
	password string
	bio      string
}

type seedArticle struct {
	authorEmail string
	title       string
	description string
	body        string
	comments    []seedComment
}

type seedComment struct {
	authorEmail string
	body        string
}

var seedUsers = []seedUser{
	{"alice", "alice@example.com", "pw123456", "Writes about distributed systems."},
	{"bob", "bob@example.com", "pw123456", "Reads more than he writes."},
}

var seedArticles = []seedArticle{
	{
		authorEmail: "alice@example.com",
		title:       "Getting Started With Nexus",
		description: "A short tour of the publishing platform.",
		body:        "Register, publish, comment. This post walks through the whole flow end to end.",
		comments: []seedComment{
			{"bob@example.com", "Nice overview, looking forward to more."},
		},
	},
	{
		authorEmail: "alice@example.com",
		title:       "Ownership Rules Explained",
		description: "Who may edit and delete what, and why.",
		body:        "Only the author of an article or comment may change or remove it. Everyone else gets a 403.",
	},
}

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Article{}, &model.Comment{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	articleService := service.NewArticleService(articleRepo)
	commentService := service.NewCommentService(articleRepo, commentRepo)

	ctx := context.Background()

	users := map[string]*model.User{}
	for _, su := range seedUsers {
		_, user, err := authService.Register(ctx, su.username, su.email, su.password)
		if err == errors.ErrDuplicateIdentity {
			user, err = userRepo.FindByEmail(ctx, su.email)
		}
		if err != nil {
			log.Fatalf("seed user %s: %v", su.username, err)
		}
		if user.Bio == "" && su.bio != "" {
			bio := su.bio
			if user, err = authService.UpdateProfile(ctx, user.ID, service.ProfileUpdate{Bio: &bio}); err != nil {
				log.Fatalf("seed user %s bio: %v", su.username, err)
			}
		}
		users[su.email] = user
		log.Printf("user %s ready (%s)", user.Username, user.ID)
	}

	existing, err := articleService.List(ctx)
	if err != nil {
		log.Fatalf("list articles: %v", err)
	}
	seen := map[string]bool{}
	for _, a := range existing {
		seen[a.Title] = true
	}

	for _, sa := range seedArticles {
		if seen[sa.title] {
			log.Printf("article %q already present, skipping", sa.title)
			continue
		}
		author := users[sa.authorEmail]
		article, err := articleService.Create(ctx, service.ArticleInput{
			Title:       sa.title,
			Description: sa.description,
			Body:        sa.body,
		}, author.ID)
		if err != nil {
			log.Fatalf("seed article %q: %v", sa.title, err)
		}
		log.Printf("article %q ready (%s)", article.Title, article.Slug)

		for _, sc := range sa.comments {
			commenter := users[sc.authorEmail]
			if _, err := commentService.Create(ctx, article.Slug, sc.body, commenter.ID); err != nil {
				log.Fatalf("seed comment on %q: %v", article.Slug, err)
			}
		}
	}

	log.Println("Seed complete")
}
