package reports

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// PriceListRow fila del reporte de lista de precios: producto + nombres de
// sus relaciones ya resueltos.
type PriceListRow struct {
	Product  *entity.Product
	Category string
	Location string
}

// PriceListPDFGenerator puerto del generador PDF de la lista de precios.
type PriceListPDFGenerator interface {
	GeneratePriceListPDF(ctx context.Context, rows []PriceListRow, generatedAt string) ([]byte, error)
}
