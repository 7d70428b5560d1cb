package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+items\s*\(id,\s*title,\s*description,\s*owner_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`
const selectByIDQ = `(?s)^SELECT\s+id,\s*title,\s*description,\s*owner_id,\s*created_at\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1\s*$`
const listByOwnerQ = `(?s)^SELECT\s+id,\s*title,\s*description,\s*owner_id,\s*created_at\s+FROM\s+items\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s*$`
const deleteQ = `(?s)^DELETE\s+FROM\s+items\s+WHERE\s+id\s*=\s*\$1\s*$`

func TestCreate_GeneratesIDAndScansCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs(sqlmock.AnyArg(), "sword", "a sharp one", "owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	item := &models.Item{Title: "sword", Description: "a sharp one", OwnerID: "owner-1"}
	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated ID, got empty")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be scanned")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByIDQ).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestListByOwner_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "owner_id", "created_at"}).
		AddRow("i-1", "sword", "", "owner-1", time.Now()).
		AddRow("i-2", "shield", "wooden", "owner-1", time.Now())
	mock.ExpectQuery(listByOwnerQ).
		WithArgs("owner-1").
		WillReturnRows(rows)

	items, err := repo.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "i-1" || items[1].Title != "shield" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestListByOwner_EmptyIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listByOwnerQ).
		WithArgs("owner-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "owner_id", "created_at"}))

	items, err := repo.ListByOwner(context.Background(), "owner-2")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "i-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
