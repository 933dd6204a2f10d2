package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// MediaRepository puerto de persistencia para adjuntos de media por colección
// con nombre. El almacenamiento físico de archivos es externo: aquí solo se
// guardan rutas.
type MediaRepository interface {
	// Replace sustituye los adjuntos de (dueño, colección) por paths, en orden.
	Replace(ownerType, ownerID, collection string, paths []string) error
	ListFor(ownerType, ownerID, collection string) ([]*entity.Media, error)
	// MapForOwners carga en lote todos los adjuntos de varios dueños:
	// ownerID -> colección -> media ordenada por posición.
	MapForOwners(ownerType string, ownerIDs []string) (map[string]map[string][]*entity.Media, error)
	DeleteFor(ownerType, ownerID string) error
}
