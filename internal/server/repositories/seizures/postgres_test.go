package seizures

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+seizures\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*$`

	mock.ExpectExec(q).
		WithArgs("s1", "u1", models.SeizureTonic, 12.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Seizure{ID: "s1", UserID: "u1", Type: models.SeizureTonic, DurationSeconds: 12}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSoftDelete_OwnRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+seizures\s+SET\s+deleted\s*=\s*true\s+WHERE\b.*$`

	mock.ExpectExec(q).
		WithArgs("s1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDelete(context.Background(), "u1", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDelete_ForeignOrAbsentRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+seizures\s+SET\s+deleted\s*=\s*true\s+WHERE\b.*$`

	mock.ExpectExec(q).
		WithArgs("s1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), "intruder", "s1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestSelectRange_ScansRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*type,\s*duration_seconds,\s*deleted,\s*created_at\s+FROM\s+seizures\b.*$`

	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "duration_seconds", "deleted", "created_at"}).
		AddRow("s1", "u1", int32(models.SeizureTonic), 5.0, false, created).
		AddRow("s2", "u1", int32(models.SeizureAtonic), 10.0, false, created)

	mock.ExpectQuery(q).
		WithArgs("u1", 5.0, 10.0).
		WillReturnRows(rows)

	got, err := repo.SelectRange(context.Background(), "u1", 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s1" || got[1].DurationSeconds != 10 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestSelectRange_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*user_id,\s*type,\s*duration_seconds,\s*deleted,\s*created_at\s+FROM\s+seizures\b.*$`

	mock.ExpectQuery(q).
		WithArgs("u1", 0.0, 1.0).
		WillReturnError(errors.New("db down"))

	if _, err := repo.SelectRange(context.Background(), "u1", 0, 1); err == nil {
		t.Fatal("expected error, got nil")
	}
}
