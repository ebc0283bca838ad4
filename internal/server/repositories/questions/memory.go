package questions

import (
	"context"
	"sync"

	"github.com/dentinhoapp/dentinho/internal/server/models"
)

// MemoryRepository is the in-memory twin of PostgresRepository, used by
// handler and service tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows []*models.Question
}

func NewMemoryRepository(rows ...*models.Question) *MemoryRepository {
	return &MemoryRepository{rows: rows}
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Question, 0, len(r.rows))
	for _, q := range r.rows {
		copied := *q
		result = append(result, &copied)
	}
	return result, nil
}
