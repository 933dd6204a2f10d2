package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// ActivityRepository puerto del log de auditoría (diffs old/new por campo).
type ActivityRepository interface {
	Record(activity *entity.Activity) error
	// ListPriceChanges devuelve las actividades más recientes de productos que
	// traen diff de precio (old.price y attributes.price presentes), ordenadas
	// de más nueva a más vieja, hasta limit.
	ListPriceChanges(limit int) ([]*entity.Activity, error)
}
