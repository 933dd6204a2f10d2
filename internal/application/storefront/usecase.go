// Package storefront arma los read-models públicos del catálogo: listados
// filtrados y paginados, variantes "latest", categorías con conteo y deltas
// históricos de precio. Solo lectura; el panel admin escribe por otro lado.
package storefront

import (
	"fmt"
	"net/url"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

const (
	latestTake = 6
	// priceChangeScan actividades a revisar antes de deduplicar por producto.
	priceChangeScan = 50
	priceChangeTake = 4

	defaultPerPage = 20
	maxPerPage     = 100
)

// UseCase casos de uso de lectura del storefront.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	tags       repository.TagRepository
	media      repository.MediaRepository
	activities repository.ActivityRepository
	resolver   MediaResolver
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
	activities repository.ActivityRepository,
	resolver MediaResolver,
) *UseCase {
	return &UseCase{
		products:   products,
		categories: categories,
		locations:  locations,
		tags:       tags,
		media:      media,
		activities: activities,
		resolver:   resolver,
	}
}

// Categories listado público: todas las categorías activas con su imagen y el
// conteo de productos no borrados.
func (uc *UseCase) Categories() (*dto.CategoriesResponse, error) {
	list, err := uc.categories.ListWithProductCount()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	mediaByOwner, err := uc.media.MapForOwners(entity.MediaOwnerCategories, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryListItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryListItem{
			ID:            c.ID,
			Name:          c.Name,
			Slug:          c.Slug,
			Image:         uc.firstMediaURL(mediaByOwner[c.ID], entity.MediaCollectionCategories),
			ProductsCount: c.ProductsCount,
		})
	}
	return &dto.CategoriesResponse{Categories: items}, nil
}

// Locations listado público id+nombre, alfabético.
func (uc *UseCase) Locations() (*dto.LocationsResponse, error) {
	list, err := uc.locations.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationSummary, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LocationSummary{ID: l.ID, Name: l.Name})
	}
	return &dto.LocationsResponse{Locations: items}, nil
}

// LatestProducts los 6 productos más recientes en su forma completa. Hoy
// high-demand y featured sirven este mismo read-model.
func (uc *UseCase) LatestProducts() (*dto.LatestProductsResponse, error) {
	list, err := uc.products.List(repository.ProductFilter{Limit: latestTake})
	if err != nil {
		return nil, err
	}
	rel, err := uc.loadRelations(list, true)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LatestProduct, 0, len(list))
	for _, p := range list {
		items = append(items, uc.toLatestProduct(p, rel))
	}
	return &dto.LatestProductsResponse{Products: items}, nil
}

// PriceChanges deltas de precio desde el log de auditoría: revisa las 50
// actividades más recientes con diff de precio, deduplica por producto
// (quedándose con la más nueva), corta a 4 y descarta productos que ya no
// existen. El porcentaje es nil cuando el precio anterior es 0 o no parsea.
func (uc *UseCase) PriceChanges() (*dto.PriceChangesResponse, error) {
	activities, err := uc.activities.ListPriceChanges(priceChangeScan)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(activities))
	unique := make([]*entity.Activity, 0, priceChangeTake)
	for _, a := range activities {
		if seen[a.SubjectID] {
			continue
		}
		seen[a.SubjectID] = true
		unique = append(unique, a)
		if len(unique) == priceChangeTake {
			break
		}
	}

	items := make([]dto.PriceChangeItem, 0, len(unique))
	for _, a := range unique {
		product, err := uc.products.GetByID(a.SubjectID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// El producto fue borrado: se descarta la fila, no es un error.
			continue
		}

		oldVal, oldOK := catalog.ToFloat(a.Properties.Old["price"])
		var newVal float64
		newOK := true
		if raw, ok := a.Properties.Attributes["price"]; ok {
			newVal, newOK = catalog.ToFloat(raw)
		} else {
			newVal = product.Price.InexactFloat64()
		}

		var percent *float64
		if oldOK && newOK {
			percent = catalog.PercentChange(oldVal, newVal)
		}

		mediaByOwner, err := uc.media.MapForOwners(entity.MediaOwnerProducts, []string{product.ID})
		if err != nil {
			return nil, err
		}
		thumb := uc.firstMediaURL(mediaByOwner[product.ID], entity.MediaCollectionThumbnail)
		image := thumb
		if image == nil {
			image = uc.firstMediaURL(mediaByOwner[product.ID], entity.MediaCollectionImages)
		}

		items = append(items, dto.PriceChangeItem{
			ID:            product.ID,
			Name:          product.Name,
			Price:         product.Price,
			ChangePercent: percent,
			Image:         image,
		})
	}
	return &dto.PriceChangesResponse{Products: items}, nil
}

// ProductsQuery filtros y paginación de GET /products.
type ProductsQuery struct {
	Category string
	Location string
	Purity   string
	Page     int
	PerPage  int
	// BaseURL del endpoint para armar next/prev_page_url.
	BaseURL string
}

// Products listado público filtrado (AND entre filtros, OR dentro de cada
// uno), ordenado de más nuevo a más viejo y paginado.
func (uc *UseCase) Products(q ProductsQuery) (*dto.PaginatedProducts, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filter := repository.ProductFilter{
		Category: q.Category,
		Location: q.Location,
		Purity:   catalog.ParsePurityFilter(q.Purity),
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}

	total, err := uc.products.Count(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(filter)
	if err != nil {
		return nil, err
	}
	rel, err := uc.loadRelations(list, false)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductListItem, 0, len(list))
	for _, p := range list {
		data = append(data, uc.toListItem(p, rel))
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	resp := &dto.PaginatedProducts{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if len(data) > 0 {
		from := filter.Offset + 1
		to := filter.Offset + len(data)
		resp.From = &from
		resp.To = &to
	}
	if page < lastPage {
		u := pageURL(q, page+1, perPage)
		resp.NextPageURL = &u
	}
	if page > 1 {
		u := pageURL(q, page-1, perPage)
		resp.PrevPageURL = &u
	}
	return resp, nil
}

// pageURL arma el link de paginación conservando los filtros activos.
func pageURL(q ProductsQuery, page, perPage int) string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Purity != "" {
		v.Set("purity", q.Purity)
	}
	v.Set("per_page", fmt.Sprintf("%d", perPage))
	v.Set("page", fmt.Sprintf("%d", page))
	return q.BaseURL + "?" + v.Encode()
}
