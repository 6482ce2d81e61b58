// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"marketforge/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var promptTemplates = []string{
	"Write a tagline for %s, a %s company",
	"Draft a product announcement for %s targeting %s professionals",
	"Write three subject lines for a %s newsletter about %s",
	"Summarize the benefits of %s for a %s audience",
	"Write a short landing page hero for %s in the %s space",
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePrompt constructs and persists a marketing-style prompt.
func (f *Factory) CreatePrompt(overrides ...func(*models.Prompt)) (*models.Prompt, error) {
	template := promptTemplates[f.r.Intn(len(promptTemplates))]
	prompt := &models.Prompt{
		PromptText: fmt.Sprintf(template, gofakeit.Company(), gofakeit.BuzzWord()),
	}

	for _, override := range overrides {
		override(prompt)
	}

	if err := f.db.Create(prompt).Error; err != nil {
		return nil, err
	}
	return prompt, nil
}

// CreateContent persists a generated-content row for the given prompt and author.
func (f *Factory) CreateContent(prompt *models.Prompt, author *models.User, overrides ...func(*models.GeneratedContent)) (*models.GeneratedContent, error) {
	content := &models.GeneratedContent{
		PromptID:    prompt.ID,
		UserID:      author.ID,
		ContentText: gofakeit.Paragraph(1, 3, 8, " "),
	}

	for _, override := range overrides {
		override(content)
	}

	if err := f.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

// CreateReview persists a review of the given content by the given reviewer.
func (f *Factory) CreateReview(content *models.GeneratedContent, reviewer *models.User, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		ContentID:      content.ID,
		ReviewerID:     reviewer.ID,
		UpdatedContent: gofakeit.Paragraph(1, 2, 8, " "),
	}
	if f.r.Intn(2) == 0 {
		comment := gofakeit.Sentence(8)
		review.Comment = &comment
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
