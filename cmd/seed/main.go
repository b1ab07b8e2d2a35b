// Command seed populates the database with demo data for local development.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"commons/internal/config"
	"commons/internal/database"
	"commons/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	numUsers = 10
	numPosts = 30
	numGoods = 20
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	gofakeit.Seed(0)

	// All demo accounts share the same password for convenience.
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password:    string(hash),
			DisplayName: gofakeit.Name(),
			IsActive:    true,
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			ID:       uuid.NewString(),
			AuthorID: author.ID,
			Title:    gofakeit.Sentence(6),
			Content:  gofakeit.Paragraph(2, 4, 12, " "),
			IsActive: true,
		}
		if err := db.Create(post).Error; err != nil {
			log.Fatalf("Failed to create post: %v", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))

	commentCount := 0
	for _, post := range posts {
		for i := 0; i < rand.Intn(5); i++ {
			author := users[rand.Intn(len(users))]
			comment := &models.Comment{
				ID:       uuid.NewString(),
				PostID:   post.ID,
				AuthorID: author.ID,
				Content:  gofakeit.Sentence(12),
				IsActive: true,
			}
			if err := db.Create(comment).Error; err != nil {
				log.Fatalf("Failed to create comment: %v", err)
			}
			commentCount++
		}
	}
	log.Printf("Created %d comments", commentCount)

	categories := []string{"apparel", "stationery", "electronics", "home", "snacks"}
	for i := 0; i < numGoods; i++ {
		goods := &models.Goods{
			// Name carries a unique index; suffix against fake-data collisions.
			Name:         fmt.Sprintf("%s %d", gofakeit.ProductName(), i),
			ThumbnailURL: gofakeit.ImageURL(320, 240),
			Category:     categories[rand.Intn(len(categories))],
			Price:        (rand.Intn(200) + 1) * 100,
		}
		if err := db.Create(goods).Error; err != nil {
			log.Fatalf("Failed to create goods: %v", err)
		}
	}
	log.Printf("Created %d goods", numGoods)

	log.Println("Seeding complete")
}
