package repository

import (
	"time"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// TagRepository puerto de persistencia para Tag y la asociación polimórfica
// taggables (clave compuesta tag_id + taggable_id + taggable_type).
type TagRepository interface {
	Create(tag *entity.Tag) error
	GetByID(id string) (*entity.Tag, error)
	GetBySlug(slug string) (*entity.Tag, error)
	Update(tag *entity.Tag) error
	List(limit, offset int) ([]*entity.Tag, error)
	SoftDelete(id string, at time.Time) error

	// SyncFor reemplaza el set de etiquetas del dueño por tagIDs.
	SyncFor(owner entity.Taggable, tagIDs []string) error
	ListFor(owner entity.Taggable) ([]*entity.Tag, error)
	// ListForOwners carga en lote las etiquetas de varios dueños del mismo tipo.
	ListForOwners(ownerType string, ownerIDs []string) (map[string][]*entity.Tag, error)
}
