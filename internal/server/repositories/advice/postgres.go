package advice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/dbx"
	"github.com/dentinhoapp/dentinho/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// RandomByCategory returns one advice row for the category, picked at
// random. common.ErrNotFound when the category has no rows.
func (r *PostgresRepository) RandomByCategory(ctx context.Context, category string) (*models.Advice, error) {
	query :=
		`SELECT id, category, advice FROM advice
		 WHERE category = $1
		 ORDER BY random()
		 LIMIT 1
		 `

	a := &models.Advice{}
	err := r.db.QueryRowContext(ctx, query, category).Scan(&a.ID, &a.Category, &a.Advice)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Advice, error) {
	query :=
		`SELECT id, category, advice FROM advice
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Advice
	for rows.Next() {
		a := &models.Advice{}
		if err := rows.Scan(&a.ID, &a.Category, &a.Advice); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category, text string) (*models.Advice, error) {
	query :=
		`INSERT INTO advice (category, advice)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	a := &models.Advice{Category: category, Advice: text}
	err := r.db.QueryRowContext(ctx, query, category, text).Scan(&a.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, category, text string) error {
	query :=
		`UPDATE advice SET category = $2, advice = $3
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id, category, text)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM advice
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
