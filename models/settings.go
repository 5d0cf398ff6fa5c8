package models

import "time"

// SpaSettings is the singleton operating configuration of the spa.
type SpaSettings struct {
	ID          string     `json:"_id,omitempty"`
	TotalRooms  int        `json:"totalRooms"`
	OpeningTime string     `json:"openingTime"`
	ClosingTime string     `json:"closingTime"`
	DownPayment *int       `json:"downPayment,omitempty"` // percentage
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type HomepageBrand struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type HomepageContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type HomepageContent struct {
	Heading         string `json:"heading,omitempty"`
	Description     string `json:"description,omitempty"`
	BodyDescription string `json:"bodyDescription,omitempty"`
}

// HomepageSettings is the singleton branding record shown on the public site.
type HomepageSettings struct {
	Brand     HomepageBrand   `json:"brand"`
	Contact   HomepageContact `json:"contact"`
	Content   HomepageContent `json:"content"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}
