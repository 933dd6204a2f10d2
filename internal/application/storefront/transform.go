package storefront

import (
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// relations relaciones precargadas en lote para transformar sin N+1.
type relations struct {
	categories map[string]*entity.Category
	locations  map[string]*entity.Location
	tags       map[string][]*entity.Tag
	media      map[string]map[string][]*entity.Media
	// catMedia media de las categorías referenciadas (solo variante latest).
	catMedia map[string]map[string][]*entity.Media
}

// loadRelations precarga categorías, ubicaciones, etiquetas y media de los
// productos dados. withCategoryMedia agrega la imagen de cada categoría
// (la necesita la variante latest).
func (uc *UseCase) loadRelations(products []*entity.Product, withCategoryMedia bool) (*relations, error) {
	ids := make([]string, 0, len(products))
	catIDs := make([]string, 0, len(products))
	locIDs := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
		catIDs = append(catIDs, p.CategoryID)
		locIDs = append(locIDs, p.LocationID)
	}

	rel := &relations{}
	var err error
	if rel.categories, err = uc.categories.GetByIDs(catIDs); err != nil {
		return nil, err
	}
	if rel.locations, err = uc.locations.GetByIDs(locIDs); err != nil {
		return nil, err
	}
	if rel.tags, err = uc.tags.ListForOwners(entity.TaggableTypeProduct, ids); err != nil {
		return nil, err
	}
	if rel.media, err = uc.media.MapForOwners(entity.MediaOwnerProducts, ids); err != nil {
		return nil, err
	}
	if withCategoryMedia {
		if rel.catMedia, err = uc.media.MapForOwners(entity.MediaOwnerCategories, catIDs); err != nil {
			return nil, err
		}
	}
	return rel, nil
}

// toListItem forma liviana para el listado paginado. Una relación ausente
// serializa como null, nunca revienta.
func (uc *UseCase) toListItem(p *entity.Product, rel *relations) dto.ProductListItem {
	thumb := uc.firstMediaURL(rel.media[p.ID], entity.MediaCollectionThumbnail)
	image := thumb
	if image == nil {
		image = uc.firstMediaURL(rel.media[p.ID], entity.MediaCollectionImages)
	}

	item := dto.ProductListItem{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Price:     p.Price,
		Purity:    purityPtr(p.Purity),
		Grade:     catalog.Grade(p.Purity),
		Thumbnail: thumb,
		Image:     image,
		Tags:      toTagSummaries(rel.tags[p.ID]),
	}
	if c := rel.categories[p.CategoryID]; c != nil {
		item.Category = &dto.CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	if l := rel.locations[p.LocationID]; l != nil {
		item.Location = &dto.LocationSummary{ID: l.ID, Name: l.Name}
	}
	return item
}

// toLatestProduct forma completa de high-demand/featured: agrega estado,
// detalle, galería completa, origen (= nombre de ubicación) y badges (solo
// nombres de etiqueta, aplanados).
func (uc *UseCase) toLatestProduct(p *entity.Product, rel *relations) dto.LatestProduct {
	thumb := uc.firstMediaURL(rel.media[p.ID], entity.MediaCollectionThumbnail)

	var gallery []string
	for _, m := range rel.media[p.ID][entity.MediaCollectionImages] {
		if u := uc.resolver.URL(m.FilePath); u != nil {
			gallery = append(gallery, *u)
		}
	}
	image := thumb
	if image == nil && len(gallery) > 0 {
		image = &gallery[0]
	}

	tags := rel.tags[p.ID]
	badges := make([]string, 0, len(tags))
	for _, t := range tags {
		badges = append(badges, t.Name)
	}

	item := dto.LatestProduct{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Price:     p.Price,
		Purity:    purityPtr(p.Purity),
		Grade:     catalog.Grade(p.Purity),
		Status:    p.Status,
		Detail:    p.Detail,
		Thumbnail: thumb,
		Images:    gallery,
		Image:     image,
		Tags:      toTagSummaries(tags),
		Badges:    badges,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if c := rel.categories[p.CategoryID]; c != nil {
		item.Category = &dto.CategoryDetail{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Image: uc.firstMediaURL(rel.catMedia[c.ID], entity.MediaCollectionCategories),
		}
	}
	if l := rel.locations[p.LocationID]; l != nil {
		item.Location = &dto.LocationSummary{ID: l.ID, Name: l.Name}
		item.Origin = &l.Name
	}
	return item
}

// firstMediaURL URL del primer adjunto de la colección, o nil si no hay.
func (uc *UseCase) firstMediaURL(byCollection map[string][]*entity.Media, collection string) *string {
	list := byCollection[collection]
	if len(list) == 0 {
		return nil
	}
	return uc.resolver.URL(list[0].FilePath)
}

func toTagSummaries(tags []*entity.Tag) []dto.TagSummary {
	out := make([]dto.TagSummary, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagSummary{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return out
}

func purityPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
