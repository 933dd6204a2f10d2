package entity

import "time"

// Tag etiqueta asociable a cualquier entidad taggable (relación polimórfica
// vía tabla taggables). Slug único derivado del nombre.
type Tag struct {
	ID        string
	Name      string
	Slug      string
	Status    int
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Taggable capacidad de recibir etiquetas: identifica al dueño en la tabla
// taggables por (id, tipo). El tipo es el nombre de tabla del dueño.
type Taggable interface {
	TaggableID() string
	TaggableType() string
}
