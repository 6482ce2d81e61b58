// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"marketforge/internal/config"
	"marketforge/internal/database"
	"marketforge/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numContents := flag.Int("contents", 50, "Number of generated contents to create")
	numReviews := flag.Int("reviews", 30, "Number of reviews to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d contents, %d reviews, clean=%v\n",
		*numUsers, *numContents, *numReviews, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumContents: *numContents,
		NumReviews:  *numReviews,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
