package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/picbay/config"
	"github.com/oksasatya/picbay/pkg/helpers"
)

var samplePhotos = []struct {
	author      string
	description string
	url         string
	thumbURL    string
	orientation string
}{
	{"Annie Spratt", "forest in morning fog", "https://images.example.com/full/forest.jpg", "https://images.example.com/thumb/forest.jpg", "landscape"},
	{"Jeremy Bishop", "wave breaking at sunset", "https://images.example.com/full/wave.jpg", "https://images.example.com/thumb/wave.jpg", "landscape"},
	{"Sarah Dorweiler", "minimal desk setup", "https://images.example.com/full/desk.jpg", "https://images.example.com/thumb/desk.jpg", "landscape"},
	{"Luca Bravo", "alpine lake reflection", "https://images.example.com/full/lake.jpg", "https://images.example.com/thumb/lake.jpg", "landscape"},
	{"Ehsan Ahmadi", "portrait in neon light", "https://images.example.com/full/neon.jpg", "https://images.example.com/thumb/neon.jpg", "portrait"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@picbay.dev"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	token, err := helpers.GenValidationToken()
	if err != nil {
		log.Fatalf("failed to generate validation token: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, username, password_hash, name, token_validation, is_validated)
		VALUES ($1, $2, $3, $4, $5, false)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, username, hash, "Demo User", token).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	for _, p := range samplePhotos {
		if _, err := db.Exec(`
			INSERT INTO photos (author, description, url, thumb_url, orientation)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (url) DO NOTHING
		`, p.author, p.description, p.url, p.thumbURL, p.orientation); err != nil {
			log.Fatalf("failed to seed photo %q: %v", p.url, err)
		}
	}
	fmt.Printf("seeded %d photos\n", len(samplePhotos))
}
