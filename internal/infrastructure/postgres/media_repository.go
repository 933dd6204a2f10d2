package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.MediaRepository = (*MediaRepo)(nil)

// MediaRepo implementación del puerto MediaRepository sobre PostgreSQL.
// Solo guarda rutas: el almacenamiento físico de archivos es externo.
type MediaRepo struct {
	q Querier
}

// NewMediaRepository construye el adaptador de persistencia para media.
func NewMediaRepository(q Querier) *MediaRepo {
	return &MediaRepo{q: q}
}

// Replace sustituye los adjuntos de (dueño, colección) por paths, preservando
// el orden recibido en la columna position.
func (r *MediaRepo) Replace(ownerType, ownerID, collection string, paths []string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`DELETE FROM media WHERE owner_type = $1 AND owner_id = $2 AND collection = $3`,
		ownerType, ownerID, collection,
	)
	if err != nil {
		return fmt.Errorf("clear media: %w", err)
	}
	now := time.Now().UTC()
	for i, path := range paths {
		_, err := r.q.Exec(ctx,
			`INSERT INTO media (id, owner_type, owner_id, collection, file_path, position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), ownerType, ownerID, collection, path, i, now,
		)
		if err != nil {
			return fmt.Errorf("insert media: %w", err)
		}
	}
	return nil
}

// ListFor adjuntos de un dueño y colección, en orden de posición.
func (r *MediaRepo) ListFor(ownerType, ownerID, collection string) ([]*entity.Media, error) {
	query := `
		SELECT id, owner_type, owner_id, collection, file_path, position, created_at
		FROM media
		WHERE owner_type = $1 AND owner_id = $2 AND collection = $3
		ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, ownerType, ownerID, collection)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()
	var list []*entity.Media
	for rows.Next() {
		var m entity.Media
		if err := rows.Scan(&m.ID, &m.OwnerType, &m.OwnerID, &m.Collection,
			&m.FilePath, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MapForOwners carga en lote todos los adjuntos de varios dueños del mismo
// tipo: ownerID -> colección -> media ordenada por posición.
func (r *MediaRepo) MapForOwners(ownerType string, ownerIDs []string) (map[string]map[string][]*entity.Media, error) {
	out := make(map[string]map[string][]*entity.Media, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id, owner_type, owner_id, collection, file_path, position, created_at
		FROM media
		WHERE owner_type = $1 AND owner_id::text = ANY($2)
		ORDER BY owner_id, collection, position`
	rows, err := r.q.Query(context.Background(), query, ownerType, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("map media for owners: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.Media
		if err := rows.Scan(&m.ID, &m.OwnerType, &m.OwnerID, &m.Collection,
			&m.FilePath, &m.Position, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		byCollection, ok := out[m.OwnerID]
		if !ok {
			byCollection = make(map[string][]*entity.Media)
			out[m.OwnerID] = byCollection
		}
		byCollection[m.Collection] = append(byCollection[m.Collection], &m)
	}
	return out, rows.Err()
}

// DeleteFor elimina todos los adjuntos de un dueño (borrado definitivo).
func (r *MediaRepo) DeleteFor(ownerType, ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM media WHERE owner_type = $1 AND owner_id = $2`, ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
