package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/database"
)

// franchise is one seed row; purse is what remains after retention spend
type franchise struct {
	name            string
	purseRemaining  float64
	playersRetained int
}

var franchises = []franchise{
	{"CSK", 55.0, 5},
	{"DC", 73.0, 4},
	{"GT", 69.0, 5},
	{"KKR", 51.0, 6},
	{"LSG", 69.0, 5},
	{"MI", 45.0, 5},
	{"PBKS", 110.5, 2},
	{"RCB", 83.0, 3},
	{"RR", 41.0, 6},
	{"SRH", 45.0, 5},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	for _, f := range franchises {
		_, err := db.Exec(`
			INSERT INTO teams (name, purse_remaining, players_purchased, players_retained, created_at, updated_at)
			VALUES ($1, $2, 0, $3, NOW(), NOW())
			ON CONFLICT (name) DO UPDATE SET
				purse_remaining = EXCLUDED.purse_remaining,
				players_retained = EXCLUDED.players_retained,
				updated_at = NOW()
		`, f.name, f.purseRemaining, f.playersRetained)
		if err != nil {
			log.Fatalf("Failed to seed team %s: %v", f.name, err)
		}
		log.Printf("✓ %s (purse %.1f Cr, %d retained)", f.name, f.purseRemaining, f.playersRetained)
	}

	log.Printf("Seeded %d teams", len(franchises))
}
