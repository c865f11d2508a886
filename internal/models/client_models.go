package models

import "time"

// Client represents one broadband service client record.
// Optional columns map to pointers so omitted values round-trip as NULL.
type Client struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        *string   `json:"email" db:"email"`
	Phone        *string   `json:"phone" db:"phone"`
	Location     *string   `json:"location" db:"location"`
	ServiceType  *string   `json:"service_type" db:"service_type"`
	SerialNumber *string   `json:"serial_number" db:"serial_number"`
	Price        *float64  `json:"price" db:"price"`
	Supporter    *string   `json:"supporter" db:"supporter"`
	HasBonus     bool      `json:"has_bonus" db:"has_bonus"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
