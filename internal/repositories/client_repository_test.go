package repositories

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Seolivier/smart-broadband-3-server/internal/models"
)

var clientCols = []string{
	"id", "full_name", "email", "phone", "location", "service_type",
	"serial_number", "price", "supporter", "has_bonus", "created_at", "updated_at",
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func clientRow(id int64, name string, created, updated time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(clientCols).
		AddRow(id, name, "a@x.com", nil, nil, nil, nil, 49.99, nil, false, created, updated)
}

func TestGetClientsPageQuery(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(clientCols).
		AddRow(int64(2), "Bob", nil, nil, nil, nil, nil, nil, nil, true, now, now).
		AddRow(int64(1), "Alice", nil, nil, nil, nil, nil, nil, nil, false, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 20).
		WillReturnRows(rows)

	clients, err := repo.GetClients(10, 20)
	if err != nil {
		t.Fatalf("GetClients: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].FullName != "Bob" || clients[1].FullName != "Alice" {
		t.Fatalf("expected newest-first order, got %q then %q", clients[0].FullName, clients[1].FullName)
	}
	if !clients[0].HasBonus {
		t.Fatalf("expected has_bonus true on first row")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetClientsEmptyTable(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("FROM clients").WillReturnRows(sqlmock.NewRows(clientCols))

	clients, err := repo.GetClients(10, 0)
	if err != nil {
		t.Fatalf("GetClients: %v", err)
	}
	if clients == nil || len(clients) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", clients)
	}
}

func TestCountClients(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(37))

	total, err := repo.CountClients()
	if err != nil {
		t.Fatalf("CountClients: %v", err)
	}
	if total != 37 {
		t.Fatalf("expected 37, got %d", total)
	}
}

func TestGetClientByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("SELECT").WithArgs(int64(42)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetClientByID(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateClientReturnsInsertedRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Alice", "a@x.com", nil, nil, nil, nil, 49.99, nil, false).
		WillReturnRows(clientRow(7, "Alice", now, now))

	email := "a@x.com"
	price := 49.99
	created, err := repo.CreateClient(&models.Client{FullName: "Alice", Email: &email, Price: &price})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", created.ID)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("UPDATE clients SET").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateClient(99, &models.Client{FullName: "Nobody"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateClientRefreshesTimestamp(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	created := time.Now().Add(-time.Hour)
	updated := time.Now()
	mock.ExpectQuery("UPDATE clients SET").
		WithArgs("Alice B.", "a@x.com", nil, nil, nil, nil, 49.99, nil, false, int64(7)).
		WillReturnRows(clientRow(7, "Alice B.", created, updated))

	email := "a@x.com"
	price := 49.99
	client, err := repo.UpdateClient(7, &models.Client{FullName: "Alice B.", Email: &email, Price: &price})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	if client.FullName != "Alice B." {
		t.Fatalf("expected replaced full_name, got %q", client.FullName)
	}
	if !client.UpdatedAt.After(client.CreatedAt) {
		t.Fatalf("expected updated_at after created_at")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteClientReturnsSnapshot(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	now := time.Now()
	mock.ExpectQuery("DELETE FROM clients").
		WithArgs(int64(7)).
		WillReturnRows(clientRow(7, "Alice", now, now))

	client, err := repo.DeleteClient(7)
	if err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if client.ID != 7 || client.FullName != "Alice" {
		t.Fatalf("expected deleted snapshot, got %+v", client)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery("DELETE FROM clients").WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.DeleteClient(404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
