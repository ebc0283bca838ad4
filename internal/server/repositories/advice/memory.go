package advice

import (
	"context"
	"math/rand"
	"sync"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/models"
)

// MemoryRepository is the in-memory twin of PostgresRepository, used by
// handler and service tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*models.Advice
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, rows: make(map[int64]*models.Advice)}
}

func (r *MemoryRepository) RandomByCategory(ctx context.Context, category string) (*models.Advice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*models.Advice
	for _, a := range r.rows {
		if a.Category == category {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return nil, common.ErrNotFound
	}

	picked := matches[rand.Intn(len(matches))]
	copied := *picked
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Advice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Advice, 0, len(r.rows))
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.rows[id]; ok {
			copied := *a
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Create(ctx context.Context, category, text string) (*models.Advice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := &models.Advice{ID: r.nextID, Category: category, Advice: text}
	r.rows[a.ID] = a
	r.nextID++
	copied := *a
	return &copied, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, category, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return common.ErrNotFound
	}
	a.Category = category
	a.Advice = text
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}
