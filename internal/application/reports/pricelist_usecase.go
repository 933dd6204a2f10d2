// Package reports genera reportes del catálogo para el panel admin.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// priceListMax tope de filas del reporte; suficiente para el catálogo actual.
const priceListMax = 500

// PriceListUseCase arma la lista de precios de productos activos y delega el
// render al generador PDF.
type PriceListUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	pdf        PriceListPDFGenerator
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	pdf PriceListPDFGenerator,
) *PriceListUseCase {
	return &PriceListUseCase{products: products, categories: categories, locations: locations, pdf: pdf}
}

// Generate produce el PDF con los productos activos (más nuevos primero).
func (uc *PriceListUseCase) Generate(ctx context.Context) ([]byte, error) {
	list, err := uc.products.List(repository.ProductFilter{Limit: priceListMax})
	if err != nil {
		return nil, err
	}

	catIDs := make([]string, 0, len(list))
	locIDs := make([]string, 0, len(list))
	for _, p := range list {
		catIDs = append(catIDs, p.CategoryID)
		locIDs = append(locIDs, p.LocationID)
	}
	cats, err := uc.categories.GetByIDs(catIDs)
	if err != nil {
		return nil, err
	}
	locs, err := uc.locations.GetByIDs(locIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]PriceListRow, 0, len(list))
	for _, p := range list {
		if p.Status != entity.ProductStatusActive {
			continue
		}
		row := PriceListRow{Product: p}
		if c := cats[p.CategoryID]; c != nil {
			row.Category = c.Name
		}
		if l := locs[p.LocationID]; l != nil {
			row.Location = l.Name
		}
		rows = append(rows, row)
	}

	return uc.pdf.GeneratePriceListPDF(ctx, rows, time.Now().Format("02/01/2006 15:04"))
}
