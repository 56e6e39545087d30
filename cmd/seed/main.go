package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/afaq832/GHSS117-Backend/internal/config"
	"github.com/afaq832/GHSS117-Backend/internal/database"
	"github.com/afaq832/GHSS117-Backend/internal/seed"
	"github.com/afaq832/GHSS117-Backend/internal/store/mongodb"
)

// Seeds the fixed admin and teacher accounts straight against the
// database, independent of the HTTP service.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = db.Close(context.Background())
	}()

	st := mongodb.New(db.DB)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	created, accounts, err := seed.Run(ctx, st)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	if !created {
		log.Printf("Admin %s already exists, nothing to do", seed.AdminEmail)
		return
	}

	for _, acct := range accounts {
		log.Printf("Created %s account: %s (%s)", acct.Role, acct.Email, acct.Name)
	}
	log.Println("Set passwords for these accounts through the identity provider")
}
