package service

import (
	"context"

	"marketforge/internal/models"
)

// Hand-rolled stubs keep service tests free of a database. Each field
// overrides one repository method; unset methods panic loudly.

type promptRepoStub struct {
	findOrCreateByTextFn func(ctx context.Context, text string) (*models.Prompt, error)
}

func (s *promptRepoStub) FindOrCreateByText(ctx context.Context, text string) (*models.Prompt, error) {
	return s.findOrCreateByTextFn(ctx, text)
}

func (s *promptRepoStub) GetByID(ctx context.Context, id uint) (*models.Prompt, error) {
	panic("GetByID not stubbed")
}

type userRepoStub struct {
	findOrCreateByEmailFn func(ctx context.Context, username, email string) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	panic("GetByID not stubbed")
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	panic("GetByEmail not stubbed")
}

func (s *userRepoStub) FindOrCreateByEmail(ctx context.Context, username, email string) (*models.User, error) {
	return s.findOrCreateByEmailFn(ctx, username, email)
}

type contentRepoStub struct {
	createFn  func(ctx context.Context, content *models.GeneratedContent) error
	getByIDFn func(ctx context.Context, id uint) (*models.GeneratedContent, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*models.GeneratedContent, error)
}

func (s *contentRepoStub) Create(ctx context.Context, content *models.GeneratedContent) error {
	return s.createFn(ctx, content)
}

func (s *contentRepoStub) GetByID(ctx context.Context, id uint) (*models.GeneratedContent, error) {
	return s.getByIDFn(ctx, id)
}

func (s *contentRepoStub) List(ctx context.Context, limit, offset int) ([]*models.GeneratedContent, error) {
	return s.listFn(ctx, limit, offset)
}

type reviewRepoStub struct {
	createFn func(ctx context.Context, review *models.Review) error
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}

func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	panic("GetByID not stubbed")
}

func (s *reviewRepoStub) ListByContent(ctx context.Context, contentID uint) ([]*models.Review, error) {
	panic("ListByContent not stubbed")
}

type generatorStub struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
}

func (s *generatorStub) Complete(ctx context.Context, prompt string) (string, error) {
	return s.completeFn(ctx, prompt)
}
