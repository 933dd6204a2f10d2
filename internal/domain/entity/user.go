package entity

import "time"

// Roles de usuarios del panel admin.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User usuario del panel de administración del catálogo.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "editor"
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
