package repository

import (
	"time"

	"github.com/tu-usuario/catalogo-api/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Los filtros se combinan con
// AND entre tipos; dentro de un tipo el match es OR (id, slug o nombre).
type ProductFilter struct {
	Category string // id, slug o nombre de la categoría
	Location string // id o nombre de la ubicación
	Purity   *catalog.PurityFilter

	// Solo panel admin: incluir/limitar a borrados suavemente.
	WithTrashed bool
	OnlyTrashed bool

	Limit  int
	Offset int
}

// ProductRepository puerto de persistencia para Product (DIP). Salvo que se
// indique lo contrario, las consultas excluyen filas con borrado suave.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List ordena por created_at descendente (lo más nuevo primero).
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	SoftDelete(id string, at time.Time) error
	Restore(id string) error
	ForceDelete(id string) error
}
