package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de publicación de un producto.
const (
	ProductStatusDraft    = 0
	ProductStatusActive   = 1
	ProductStatusInactive = 2
)

// TaggableTypeProduct valor de taggable_type para productos en la tabla taggables.
const TaggableTypeProduct = "products"

// Product pieza del catálogo (oro/metales). Purity se guarda como texto
// (filas históricas traen decimales tipo "99.5"); las comparaciones numéricas
// castean en la consulta. Detail es un mapa clave/valor libre del panel admin.
type Product struct {
	ID          string
	CategoryID  string
	LocationID  string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Purity      string // porcentaje 1..100
	Status      int    // 0=Draft, 1=Active, 2=Inactive
	Detail      map[string]string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// TaggableID implementa Taggable.
func (p *Product) TaggableID() string { return p.ID }

// TaggableType implementa Taggable.
func (p *Product) TaggableType() string { return TaggableTypeProduct }
