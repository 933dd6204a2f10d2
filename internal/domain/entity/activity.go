package entity

import "time"

// LogNameProducts nombre de log de las actividades de productos.
const LogNameProducts = "products"

// ActivityChanges diffs a nivel de campo de un cambio: Attributes trae los
// valores nuevos y Old los anteriores (ausente en creaciones).
type ActivityChanges struct {
	Attributes map[string]any `json:"attributes,omitempty"`
	Old        map[string]any `json:"old,omitempty"`
}

// Activity registro de auditoría de un cambio sobre una entidad, con diffs
// old/new por campo. Solo se consume para calcular deltas históricos de precio.
type Activity struct {
	ID          string
	LogName     string
	Description string // created, updated, deleted
	SubjectType string
	SubjectID   string
	CauserID    string // actor del cambio; vacío si no aplica
	Properties  ActivityChanges
	CreatedAt   time.Time
}
