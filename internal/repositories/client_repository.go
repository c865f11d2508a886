package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Seolivier/smart-broadband-3-server/internal/models"
)

// clientColumns is the column list shared by every query so scans stay in sync.
const clientColumns = `id, full_name, email, phone, location, service_type, serial_number, price, supporter, has_bonus, created_at, updated_at`

// ClientRepository defines the interface for client-related database operations.
// Insert, update and delete all return the affected row (one row per operation).
type ClientRepository interface {
	CreateClient(client *models.Client) (*models.Client, error)
	GetClientByID(id int64) (*models.Client, error)
	GetClients(limit, offset int) ([]models.Client, error)
	CountClients() (int, error)
	UpdateClient(id int64, client *models.Client) (*models.Client, error)
	DeleteClient(id int64) (*models.Client, error)
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(s scanner) (*models.Client, error) {
	client := &models.Client{}
	err := s.Scan(
		&client.ID, &client.FullName, &client.Email, &client.Phone,
		&client.Location, &client.ServiceType, &client.SerialNumber,
		&client.Price, &client.Supporter, &client.HasBonus,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateClient inserts a new client. The database assigns id, created_at and
// updated_at; both timestamps come from the same statement so they are equal.
func (r *clientRepository) CreateClient(client *models.Client) (*models.Client, error) {
	query := `INSERT INTO clients (full_name, email, phone, location, service_type, serial_number, price, supporter, has_bonus)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING ` + clientColumns

	inserted, err := scanClient(r.db.QueryRow(query,
		client.FullName, client.Email, client.Phone, client.Location,
		client.ServiceType, client.SerialNumber, client.Price,
		client.Supporter, client.HasBonus,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return inserted, nil
}

// GetClientByID retrieves a client by its ID.
func (r *clientRepository) GetClientByID(id int64) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves one page of clients, newest first.
func (r *clientRepository) GetClients(limit, offset int) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// CountClients returns the total number of client records.
func (r *clientRepository) CountClients() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}
	return count, nil
}

// UpdateClient replaces every mutable column on the matching record and
// refreshes updated_at. Fields left nil are written as NULL; this is a full
// replace, not a merge.
func (r *clientRepository) UpdateClient(id int64, client *models.Client) (*models.Client, error) {
	query := `UPDATE clients SET
	            full_name = $1, email = $2, phone = $3, location = $4,
	            service_type = $5, serial_number = $6, price = $7,
	            supporter = $8, has_bonus = $9, updated_at = NOW()
	          WHERE id = $10
	          RETURNING ` + clientColumns

	updated, err := scanClient(r.db.QueryRow(query,
		client.FullName, client.Email, client.Phone, client.Location,
		client.ServiceType, client.SerialNumber, client.Price,
		client.Supporter, client.HasBonus, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, id, err)
	}
	return updated, nil
}

// DeleteClient removes a client and returns the deleted row as confirmation.
func (r *clientRepository) DeleteClient(id int64) (*models.Client, error) {
	query := `DELETE FROM clients WHERE id = $1 RETURNING ` + clientColumns

	deleted, err := scanClient(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	return deleted, nil
}
