package models

import (
	"github.com/shopspring/decimal"
)

type ServiceStatus string

const (
	ServiceAvailable   ServiceStatus = "available"
	ServiceUnavailable ServiceStatus = "unavailable"
)

func (s ServiceStatus) Valid() bool {
	return s == ServiceAvailable || s == ServiceUnavailable
}

type Service struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Duration      int             `json:"duration"` // in minutes
	Category      string          `json:"category"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	ImagePublicID string          `json:"imagePublicId,omitempty"`
	Status        ServiceStatus   `json:"status"`
}
