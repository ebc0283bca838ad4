// Package services holds the application services behind the HTTP API:
// advice lookup and administration, admin sign-in, and presigned image
// uploads.
package services

import (
	"context"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/models"
	"github.com/dentinhoapp/dentinho/internal/server/repositories/advice"
)

// validCategories are the category keys the client offers.
var validCategories = map[string]bool{
	"toothCare":   true,
	"goodHabits":  true,
	"dentalFloss": true,
	"toothache":   true,
}

type AdviceService struct {
	repo advice.Repository
}

func NewAdviceService(repo advice.Repository) *AdviceService {
	return &AdviceService{repo: repo}
}

// Random returns one random advice text for the category.
// common.ErrNotFound when the category has no rows (or is unknown).
func (s *AdviceService) Random(ctx context.Context, category string) (string, error) {
	a, err := s.repo.RandomByCategory(ctx, category)
	if err != nil {
		return "", err
	}
	return a.Advice, nil
}

func (s *AdviceService) List(ctx context.Context) ([]*models.Advice, error) {
	return s.repo.List(ctx)
}

func (s *AdviceService) Create(ctx context.Context, category, text string) (*models.Advice, error) {
	if !validCategories[category] || text == "" {
		return nil, common.ErrMissingFields
	}
	return s.repo.Create(ctx, category, text)
}

func (s *AdviceService) Update(ctx context.Context, id int64, category, text string) error {
	if !validCategories[category] || text == "" {
		return common.ErrMissingFields
	}
	return s.repo.Update(ctx, id, category, text)
}

func (s *AdviceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
