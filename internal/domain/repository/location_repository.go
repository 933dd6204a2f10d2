package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// LocationRepository puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetBySlug(slug string) (*entity.Location, error)
	GetByIDs(ids []string) (map[string]*entity.Location, error)
	Update(location *entity.Location) error
	// ListAll ordenado alfabéticamente por nombre.
	ListAll() ([]*entity.Location, error)
	Delete(id string) error
}
