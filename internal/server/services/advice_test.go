package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/server/repositories/advice"
)

func TestAdviceService_RandomAndCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewAdviceService(advice.NewMemoryRepository())

	_, err := svc.Random(ctx, "toothCare")
	assert.ErrorIs(t, err, common.ErrNotFound)

	created, err := svc.Create(ctx, "toothCare", "Brush twice a day.")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	text, err := svc.Random(ctx, "toothCare")
	require.NoError(t, err)
	assert.Equal(t, "Brush twice a day.", text)

	require.NoError(t, svc.Update(ctx, created.ID, "toothCare", "Brush after every meal."))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Brush after every meal.", list[0].Advice)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), common.ErrNotFound)
}

func TestAdviceService_RejectsUnknownCategoryAndEmptyText(t *testing.T) {
	ctx := context.Background()
	svc := NewAdviceService(advice.NewMemoryRepository())

	_, err := svc.Create(ctx, "nonsense", "text")
	assert.ErrorIs(t, err, common.ErrMissingFields)

	_, err = svc.Create(ctx, "toothCare", "")
	assert.ErrorIs(t, err, common.ErrMissingFields)

	assert.ErrorIs(t, svc.Update(ctx, 1, "nonsense", "text"), common.ErrMissingFields)
}
