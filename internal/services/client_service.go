package services

import (
	"errors"
	"fmt"

	"github.com/Seolivier/smart-broadband-3-server/internal/models"
	"github.com/Seolivier/smart-broadband-3-server/internal/repositories"
)

// ErrClientNotFound is returned when the requested client does not exist.
var ErrClientNotFound = errors.New("client not found")

// PageSize is the fixed number of clients returned per list page.
const PageSize = 10

// ClientRequest carries the mutable client fields from an HTTP body.
// Create accepts any subset; update treats the same shape as a full
// replacement, so absent fields become NULL on the stored row.
type ClientRequest struct {
	FullName     string   `json:"full_name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	ServiceType  *string  `json:"service_type"`
	SerialNumber *string  `json:"serial_number"`
	Price        *float64 `json:"price"`
	Supporter    *string  `json:"supporter"`
	HasBonus     bool     `json:"has_bonus"`
}

// ClientPage is one page of the client listing.
type ClientPage struct {
	Data         []models.Client `json:"data"`
	CurrentPage  int             `json:"currentPage"`
	TotalPages   int             `json:"totalPages"`
	TotalClients int             `json:"totalClients"`
}

// ClientService exposes the client operations used by the HTTP handlers.
type ClientService interface {
	GetClients(page int) (*ClientPage, error)
	GetClientByID(clientID int64) (*models.Client, error)
	CreateClient(req ClientRequest) (*models.Client, error)
	UpdateClient(clientID int64, req ClientRequest) (*models.Client, error)
	DeleteClient(clientID int64) (*models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository) ClientService {
	return &clientService{clientRepo: repo}
}

func (req ClientRequest) toModel() *models.Client {
	return &models.Client{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		ServiceType:  req.ServiceType,
		SerialNumber: req.SerialNumber,
		Price:        req.Price,
		Supporter:    req.Supporter,
		HasBonus:     req.HasBonus,
	}
}

// GetClients returns the requested page, newest records first. Pages at or
// below zero are treated as page one.
func (s *clientService) GetClients(page int) (*ClientPage, error) {
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * PageSize

	clients, err := s.clientRepo.GetClients(PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	total, err := s.clientRepo.CountClients()
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	return &ClientPage{
		Data:         clients,
		CurrentPage:  page,
		TotalPages:   (total + PageSize - 1) / PageSize,
		TotalClients: total,
	}, nil
}

func (s *clientService) GetClientByID(clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) CreateClient(req ClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.CreateClient(req.toModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) UpdateClient(clientID int64, req ClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.UpdateClient(clientID, req.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.DeleteClient(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}
	return client, nil
}
