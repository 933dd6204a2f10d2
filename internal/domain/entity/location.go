package entity

import "time"

// Location origen/procedencia de un producto (ej: Dubai, Ginebra).
type Location struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
