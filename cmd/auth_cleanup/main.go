package main

import (
	"log"
	"os"
	"time"

	"connecthub/internal/database"
)

// Purges spent and expired password-reset codes. Run from cron; the API
// never reads rows past their expiry, so this is purely hygiene.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	now := time.Now()
	res := db.Exec(`DELETE FROM password_reset_codes WHERE expires_at < ? OR used_at IS NOT NULL`, now)
	if res.Error != nil {
		log.Fatalf("cleanup password_reset_codes failed: %v", res.Error)
	}

	log.Printf("auth cleanup completed: password_reset_codes=%d", res.RowsAffected)
}
