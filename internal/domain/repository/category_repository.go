package repository

import (
	"time"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	// GetByIDs carga en lote para armar read-models sin N+1.
	GetByIDs(ids []string) (map[string]*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	// ListWithProductCount listado público: cada categoría con su conteo de
	// productos activos (sin borrados suavemente).
	ListWithProductCount() ([]*entity.CategoryWithCount, error)
	SoftDelete(id string, at time.Time) error
}
