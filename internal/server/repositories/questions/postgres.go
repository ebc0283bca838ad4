package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dentinhoapp/dentinho/internal/dbx"
	"github.com/dentinhoapp/dentinho/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all quiz questions in insertion order. The options column
// holds a JSON array of strings.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Question, error) {
	query :=
		`SELECT id, question, options, correct_answer FROM questions
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Question
	for rows.Next() {
		q := &models.Question{}
		var options []byte
		if err := rows.Scan(&q.ID, &q.Question, &options, &q.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("invalid options for question %d: %w", q.ID, err)
		}
		result = append(result, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
