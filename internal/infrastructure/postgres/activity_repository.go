package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// Properties se guarda como jsonb con la forma {"attributes": {...}, "old": {...}}.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador del log de auditoría.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Record persiste un registro de auditoría.
func (r *ActivityRepo) Record(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, log_name, description, subject_type, subject_id, causer_id, properties, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.LogName, activity.Description,
		activity.SubjectType, activity.SubjectID, nullIfEmpty(activity.CauserID),
		activity.Properties, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListPriceChanges actividades recientes de productos con diff de precio
// (old.price y attributes.price presentes y no nulos), de más nueva a más
// vieja, hasta limit.
func (r *ActivityRepo) ListPriceChanges(limit int) ([]*entity.Activity, error) {
	query := `
		SELECT id, log_name, description, subject_type, subject_id,
		       COALESCE(causer_id::text, ''), properties, created_at
		FROM activities
		WHERE log_name = $1
		  AND properties -> 'old' ->> 'price' IS NOT NULL
		  AND properties -> 'attributes' ->> 'price' IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, entity.LogNameProducts, limit)
	if err != nil {
		return nil, fmt.Errorf("list price changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.LogName, &a.Description, &a.SubjectType,
			&a.SubjectID, &a.CauserID, &a.Properties, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
