package usecase

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función con repos atados a una misma transacción.
// Lo usa el caso de uso de productos para que producto + etiquetas + media +
// auditoría queden atómicos.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		tags repository.TagRepository,
		media repository.MediaRepository,
		activities repository.ActivityRepository,
	) error) error
}
