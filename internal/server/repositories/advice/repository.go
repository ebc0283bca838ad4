package advice

import (
	"context"

	"github.com/dentinhoapp/dentinho/internal/server/models"
)

type Repository interface {
	RandomByCategory(ctx context.Context, category string) (*models.Advice, error)
	List(ctx context.Context) ([]*models.Advice, error)
	Create(ctx context.Context, category, text string) (*models.Advice, error)
	Update(ctx context.Context, id int64, category, text string) error
	Delete(ctx context.Context, id int64) error
}
