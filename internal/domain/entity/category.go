package entity

import "time"

// Category agrupa productos del catálogo. Slug se deriva del nombre al crear
// y es inmutable después (único en DB). Soporta borrado suave.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string // vacío si no tiene
	CreatedBy   string // usuario admin que la creó (actor explícito)
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // nil = activa
}

// CategoryWithCount proyección de listado público: categoría + número de
// productos activos (los borrados suavemente no cuentan).
type CategoryWithCount struct {
	Category
	ProductsCount int
}
