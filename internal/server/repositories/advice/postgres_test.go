package advice

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dentinhoapp/dentinho/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestRandomByCategory_ReturnsRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, category, advice FROM advice`).
		WithArgs("toothCare").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "advice"}).
			AddRow(int64(3), "toothCare", "Brush twice a day."))

	a, err := repo.RandomByCategory(context.Background(), "toothCare")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 3 || a.Advice != "Brush twice a day." {
		t.Fatalf("unexpected row: %+v", a)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRandomByCategory_EmptyCategoryIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, category, advice FROM advice`).
		WithArgs("toothache").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.RandomByCategory(context.Background(), "toothache")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreate_ReturnsAssignedID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO advice`).
		WithArgs("goodHabits", "Drink water after meals.").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	a, err := repo.Create(context.Background(), "goodHabits", "Drink water after meals.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 7 {
		t.Fatalf("want id 7, got %d", a.ID)
	}
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE advice SET`).
		WithArgs(int64(99), "toothCare", "x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, "toothCare", "x")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM advice`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_ScansAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, category, advice FROM advice`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "advice"}).
			AddRow(int64(1), "toothCare", "a").
			AddRow(int64(2), "dentalFloss", "b"))

	rows, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[1].Category != "dentalFloss" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
