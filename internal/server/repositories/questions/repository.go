package questions

import (
	"context"

	"github.com/dentinhoapp/dentinho/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Question, error)
}
