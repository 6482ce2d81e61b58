package seed

import (
	"fmt"
	"log"

	"marketforge/internal/database"
	"marketforge/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumContents int
	NumReviews  int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d contents, %d reviews...",
		opts.NumUsers, opts.NumContents, opts.NumReviews)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d test users created", len(users))

	if len(users) == 0 {
		return nil
	}

	contents := make([]*models.GeneratedContent, 0, opts.NumContents)
	for i := 0; i < opts.NumContents; i++ {
		prompt, err := factory.CreatePrompt()
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}
		author := users[factory.r.Intn(len(users))]
		content, err := factory.CreateContent(prompt, author)
		if err != nil {
			return fmt.Errorf("failed to create content: %w", err)
		}
		contents = append(contents, content)
	}
	log.Printf("✓ %d generated contents created", len(contents))

	if len(contents) > 0 {
		for i := 0; i < opts.NumReviews; i++ {
			content := contents[factory.r.Intn(len(contents))]
			reviewer := users[factory.r.Intn(len(users))]
			if _, err := factory.CreateReview(content, reviewer); err != nil {
				return fmt.Errorf("failed to create review: %w", err)
			}
		}
		log.Printf("✓ %d reviews created", opts.NumReviews)
	}

	log.Println("🎉 Database seeding completed")
	return nil
}

// clearData removes all rows in dependency order so foreign keys hold.
func clearData(db *gorm.DB) error {
	registered := database.RegisteredModels()
	for i := len(registered) - 1; i >= 0; i-- {
		if err := db.Where("1 = 1").Delete(registered[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
