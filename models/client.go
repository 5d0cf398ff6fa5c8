package models

import "strings"

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientBanned   ClientStatus = "banned"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientBanned:
		return true
	}
	return false
}

// Client is a registered spa customer as managed through the client records endpoints.
type Client struct {
	ID        string       `json:"_id"`
	FirstName string       `json:"firstname"`
	LastName  string       `json:"lastname"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Status    ClientStatus `json:"status"`
}

func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
