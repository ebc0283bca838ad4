package questions

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_DecodesOptions(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, question, options, correct_answer FROM questions`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question", "options", "correct_answer"}).
			AddRow(int64(1), "How often should you brush?", []byte(`["Once","Twice a day"]`), "Twice a day"))

	qs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("want 1 question, got %d", len(qs))
	}
	if len(qs[0].Options) != 2 || qs[0].Options[1] != "Twice a day" {
		t.Fatalf("options not decoded: %+v", qs[0].Options)
	}
}

func TestList_BadOptionsJSON(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, question, options, correct_answer FROM questions`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question", "options", "correct_answer"}).
			AddRow(int64(1), "q", []byte(`not json`), "a"))

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
