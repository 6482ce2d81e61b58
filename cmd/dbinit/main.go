// Command main drops and recreates the application schema. Destructive:
// intended for development and CI databases only.
package main

import (
	"flag"
	"log"

	"marketforge/internal/config"
	"marketforge/internal/database"
)

func main() {
	confirm := flag.Bool("yes", false, "Confirm dropping all tables")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*confirm {
		log.Fatalf("Refusing to drop tables in %q without -yes", cfg.DBName)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Dropping and recreating tables in %q...", cfg.DBName)
	if err := database.Reset(db); err != nil {
		log.Fatalf("Schema reset failed: %v", err)
	}

	log.Println("✓ Schema recreated")
}
