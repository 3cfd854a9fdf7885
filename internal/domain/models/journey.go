package models

import "travelapi/internal/domain"

// Journey is a packaged trip offered from fixture data.
type Journey struct {
	ID             int64       `json:"id"`
	Destination    string      `json:"destination"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	StartDate      domain.Date `json:"start_date"`
	EndDate        domain.Date `json:"end_date"`
	IsGroup        bool        `json:"is_group"`
	MaxPeople      int         `json:"max_people"`
	PricePerPerson float64     `json:"price_per_person"`
	Currency       string      `json:"currency"`
}
