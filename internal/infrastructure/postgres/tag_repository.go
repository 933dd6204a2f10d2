package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

const tagColumns = `id, name, slug, status, created_by, created_at, updated_at, deleted_at`

// TagRepo implementación del puerto TagRepository sobre PostgreSQL. La
// asociación polimórfica vive en la tabla taggables con clave compuesta
// (tag_id, taggable_id, taggable_type).
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador de persistencia para etiquetas.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste una nueva etiqueta.
func (r *TagRepo) Create(tag *entity.Tag) error {
	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, NULL)`
	_, err := r.q.Exec(context.Background(), query,
		tag.ID, tag.Name, tag.Slug, tag.Status, tag.CreatedBy, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta activa por ID.
func (r *TagRepo) GetByID(id string) (*entity.Tag, error) {
	return r.getOne(`id::text = $1 AND deleted_at IS NULL`, id)
}

// GetBySlug obtiene una etiqueta activa por slug.
func (r *TagRepo) GetBySlug(slug string) (*entity.Tag, error) {
	return r.getOne(`slug = $1 AND deleted_at IS NULL`, slug)
}

func (r *TagRepo) getOne(where string, arg any) (*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE ` + where
	t, err := scanTag(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// Update actualiza nombre y status. Slug inmutable.
func (r *TagRepo) Update(tag *entity.Tag) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tags SET name = $2, status = $3, updated_at = $4 WHERE id = $1`,
		tag.ID, tag.Name, tag.Status, tag.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// List listado admin paginado, alfabético.
func (r *TagRepo) List(limit, offset int) ([]*entity.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags
		WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SoftDelete marca la etiqueta como borrada.
func (r *TagRepo) SoftDelete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tags SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("soft delete tag: %w", err)
	}
	return nil
}

// SyncFor reemplaza el set completo de etiquetas del dueño: borra las filas
// actuales de taggables y escribe las nuevas.
func (r *TagRepo) SyncFor(owner entity.Taggable, tagIDs []string) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`DELETE FROM taggables WHERE taggable_id = $1 AND taggable_type = $2`,
		owner.TaggableID(), owner.TaggableType(),
	)
	if err != nil {
		return fmt.Errorf("clear taggables: %w", err)
	}
	for _, tagID := range tagIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO taggables (tag_id, taggable_id, taggable_type) VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			tagID, owner.TaggableID(), owner.TaggableType(),
		)
		if err != nil {
			return fmt.Errorf("insert taggable: %w", err)
		}
	}
	return nil
}

// ListFor etiquetas activas de un dueño, alfabético.
func (r *TagRepo) ListFor(owner entity.Taggable) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.slug, t.status, t.created_by, t.created_at, t.updated_at, t.deleted_at
		FROM tags t
		JOIN taggables tg ON tg.tag_id = t.id
		WHERE tg.taggable_id = $1 AND tg.taggable_type = $2 AND t.deleted_at IS NULL
		ORDER BY t.name`
	rows, err := r.q.Query(context.Background(), query, owner.TaggableID(), owner.TaggableType())
	if err != nil {
		return nil, fmt.Errorf("list tags for owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListForOwners carga en lote las etiquetas de varios dueños del mismo tipo,
// para armar listados sin N+1.
func (r *TagRepo) ListForOwners(ownerType string, ownerIDs []string) (map[string][]*entity.Tag, error) {
	out := make(map[string][]*entity.Tag, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT tg.taggable_id::text,
		       t.id, t.name, t.slug, t.status, t.created_by, t.created_at, t.updated_at, t.deleted_at
		FROM tags t
		JOIN taggables tg ON tg.tag_id = t.id
		WHERE tg.taggable_type = $1 AND tg.taggable_id::text = ANY($2) AND t.deleted_at IS NULL
		ORDER BY t.name`
	rows, err := r.q.Query(context.Background(), query, ownerType, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("list tags for owners: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ownerID string
		var t entity.Tag
		if err := rows.Scan(&ownerID, &t.ID, &t.Name, &t.Slug, &t.Status,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out[ownerID] = append(out[ownerID], &t)
	}
	return out, rows.Err()
}

func scanTag(row pgx.Row) (*entity.Tag, error) {
	var t entity.Tag
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Status, &t.CreatedBy,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
