package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/storefront"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de persistencia para el storefront
// ──────────────────────────────────────────────────────────────────────────────

type stubProducts struct {
	items      []*entity.Product
	categories map[string]*entity.Category
	locations  map[string]*entity.Location
}

func (s *stubProducts) matches(p *entity.Product, f repository.ProductFilter) bool {
	if p.DeletedAt != nil {
		return false
	}
	if f.Category != "" {
		c := s.categories[p.CategoryID]
		if c == nil || (f.Category != c.ID && f.Category != c.Slug && f.Category != c.Name) {
			return false
		}
	}
	if f.Location != "" {
		l := s.locations[p.LocationID]
		if l == nil || (f.Location != l.ID && f.Location != l.Name) {
			return false
		}
	}
	return f.Purity.Matches(p.Purity)
}

func (s *stubProducts) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.items {
		if s.matches(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *stubProducts) Count(f repository.ProductFilter) (int, error) {
	n := 0
	for _, p := range s.items {
		if s.matches(p, f) {
			n++
		}
	}
	return n, nil
}

func (s *stubProducts) GetByID(id string) (*entity.Product, error) {
	for _, p := range s.items {
		if p.ID == id && p.DeletedAt == nil {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProducts) Create(*entity.Product) error              { return nil }
func (s *stubProducts) GetBySlug(string) (*entity.Product, error) { return nil, nil }
func (s *stubProducts) Update(*entity.Product) error              { return nil }
func (s *stubProducts) SoftDelete(string, time.Time) error        { return nil }
func (s *stubProducts) Restore(string) error                      { return nil }
func (s *stubProducts) ForceDelete(string) error                  { return nil }

type stubCategories struct {
	items map[string]*entity.Category
}

func (s *stubCategories) GetByIDs(ids []string) (map[string]*entity.Category, error) {
	out := map[string]*entity.Category{}
	for _, id := range ids {
		if c, ok := s.items[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (s *stubCategories) ListWithProductCount() ([]*entity.CategoryWithCount, error) {
	var out []*entity.CategoryWithCount
	for _, c := range s.items {
		out = append(out, &entity.CategoryWithCount{Category: *c, ProductsCount: 1})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubCategories) Create(*entity.Category) error              { return nil }
func (s *stubCategories) GetByID(string) (*entity.Category, error)   { return nil, nil }
func (s *stubCategories) GetBySlug(string) (*entity.Category, error) { return nil, nil }
func (s *stubCategories) Update(*entity.Category) error              { return nil }
func (s *stubCategories) List(int, int) ([]*entity.Category, error)  { return nil, nil }
func (s *stubCategories) SoftDelete(string, time.Time) error         { return nil }

type stubLocations struct {
	items map[string]*entity.Location
}

func (s *stubLocations) GetByIDs(ids []string) (map[string]*entity.Location, error) {
	out := map[string]*entity.Location{}
	for _, id := range ids {
		if l, ok := s.items[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (s *stubLocations) ListAll() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range s.items {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *stubLocations) Create(*entity.Location) error              { return nil }
func (s *stubLocations) GetByID(string) (*entity.Location, error)   { return nil, nil }
func (s *stubLocations) GetBySlug(string) (*entity.Location, error) { return nil, nil }
func (s *stubLocations) Update(*entity.Location) error              { return nil }
func (s *stubLocations) Delete(string) error                        { return nil }

type stubTags struct{}

func (stubTags) Create(*entity.Tag) error                       { return nil }
func (stubTags) GetByID(string) (*entity.Tag, error)            { return nil, nil }
func (stubTags) GetBySlug(string) (*entity.Tag, error)          { return nil, nil }
func (stubTags) Update(*entity.Tag) error                       { return nil }
func (stubTags) List(int, int) ([]*entity.Tag, error)           { return nil, nil }
func (stubTags) SoftDelete(string, time.Time) error             { return nil }
func (stubTags) SyncFor(entity.Taggable, []string) error        { return nil }
func (stubTags) ListFor(entity.Taggable) ([]*entity.Tag, error) { return nil, nil }

func (stubTags) ListForOwners(string, []string) (map[string][]*entity.Tag, error) {
	return map[string][]*entity.Tag{}, nil
}

type stubMedia struct {
	// ownerID -> colección -> rutas
	byOwner map[string]map[string][]string
}

func (s *stubMedia) MapForOwners(_ string, ownerIDs []string) (map[string]map[string][]*entity.Media, error) {
	out := map[string]map[string][]*entity.Media{}
	for _, id := range ownerIDs {
		collections, ok := s.byOwner[id]
		if !ok {
			continue
		}
		byCollection := map[string][]*entity.Media{}
		for collection, paths := range collections {
			for i, path := range paths {
				byCollection[collection] = append(byCollection[collection], &entity.Media{
					OwnerID: id, Collection: collection, FilePath: path, Position: i,
				})
			}
		}
		out[id] = byCollection
	}
	return out, nil
}

func (s *stubMedia) Replace(string, string, string, []string) error { return nil }
func (s *stubMedia) DeleteFor(string, string) error                 { return nil }

func (s *stubMedia) ListFor(string, string, string) ([]*entity.Media, error) { return nil, nil }

type stubActivities struct {
	items []*entity.Activity
}

func (s *stubActivities) Record(*entity.Activity) error { return nil }

func (s *stubActivities) ListPriceChanges(limit int) ([]*entity.Activity, error) {
	if limit < len(s.items) {
		return s.items[:limit], nil
	}
	return s.items, nil
}

type stubResolver struct{}

func (stubResolver) URL(path string) *string {
	if path == "" {
		return nil
	}
	u := "https://cdn.test/" + path
	return &u
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

func buildStorefrontApp(t *testing.T) *fiber.App {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gone := base.Add(-time.Hour)

	categories := map[string]*entity.Category{
		"cat-gold":   {ID: "cat-gold", Name: "Gold", Slug: "gold"},
		"cat-silver": {ID: "cat-silver", Name: "Silver", Slug: "silver"},
	}
	locations := map[string]*entity.Location{
		"loc-dubai": {ID: "loc-dubai", Name: "Dubai", Slug: "dubai"},
		"loc-ghana": {ID: "loc-ghana", Name: "Ghana", Slug: "ghana"},
	}
	products := &stubProducts{
		categories: categories,
		locations:  locations,
		items: []*entity.Product{
			{
				ID: "p-bar", CategoryID: "cat-gold", LocationID: "loc-dubai",
				Name: "Gold Bar 1kg", Slug: "gold-bar-1kg",
				Price: decimal.NewFromInt(1000), Purity: "99.5",
				Status: entity.ProductStatusActive, CreatedAt: base.Add(2 * time.Minute),
			},
			{
				ID: "p-coin", CategoryID: "cat-silver", LocationID: "loc-ghana",
				Name: "Silver Coin", Slug: "silver-coin",
				Price: decimal.NewFromInt(50), Purity: "92",
				Status: entity.ProductStatusActive, CreatedAt: base.Add(time.Minute),
			},
			{
				ID: "p-old", CategoryID: "cat-gold", LocationID: "loc-dubai",
				Name: "Retired Bar", Slug: "retired-bar",
				Price: decimal.NewFromInt(900), Purity: "90",
				Status: entity.ProductStatusActive, CreatedAt: base, DeletedAt: &gone,
			},
		},
	}
	media := &stubMedia{byOwner: map[string]map[string][]string{
		"p-bar": {"thumbnail": {"products/bar.jpg"}, "images": {"products/bar-a.jpg"}},
	}}
	activities := &stubActivities{items: []*entity.Activity{
		{
			ID: "a-1", LogName: entity.LogNameProducts, Description: "updated",
			SubjectType: entity.TaggableTypeProduct, SubjectID: "p-bar",
			Properties: entity.ActivityChanges{
				Old:        map[string]any{"price": "1000"},
				Attributes: map[string]any{"price": "1100"},
			},
			CreatedAt: base.Add(3 * time.Minute),
		},
	}}

	uc := storefront.NewUseCase(
		products,
		&stubCategories{items: categories},
		&stubLocations{items: locations},
		stubTags{},
		media,
		activities,
		stubResolver{},
	)

	app := fiber.New()
	h := NewStorefrontHandler(uc)
	api := app.Group("/api")
	api.Get("/categories", h.Categories)
	api.Get("/locations", h.Locations)
	api.Get("/price-changes", h.PriceChanges)
	api.Get("/high-demand", h.HighDemand)
	api.Get("/products", h.Products)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	req := httptest.NewRequest("GET", "http://catalogo.test"+path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProducts_SinFiltros(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.PaginatedProducts
	status := getJSON(t, app, "/api/products", &out)
	require.Equal(t, fiber.StatusOK, status)

	// El borrado suave no aparece; orden de más nuevo a más viejo.
	require.Len(t, out.Data, 2)
	assert.Equal(t, "Gold Bar 1kg", out.Data[0].Name)
	assert.Equal(t, "Silver Coin", out.Data[1].Name)

	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 20, out.PerPage)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 1, out.LastPage)
	require.NotNil(t, out.From)
	require.NotNil(t, out.To)
	assert.Equal(t, 1, *out.From)
	assert.Equal(t, 2, *out.To)
	assert.Nil(t, out.NextPageURL)
	assert.Nil(t, out.PrevPageURL)
}

func TestGetProducts_CategoriaPorSlugYPorID(t *testing.T) {
	app := buildStorefrontApp(t)

	var bySlug, byID dto.PaginatedProducts
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/products?category=gold", &bySlug))
	require.Equal(t, fiber.StatusOK, getJSON(t, app, "/api/products?category=cat-gold", &byID))

	require.Len(t, bySlug.Data, 1)
	assert.Equal(t, "p-bar", bySlug.Data[0].ID)
	assert.Equal(t, bySlug.Data, byID.Data)
}

func TestGetProducts_FiltrosCombinados(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.PaginatedProducts
	status := getJSON(t, app, "/api/products?category=gold&location=Dubai&purity=99-100", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Data, 1)
	item := out.Data[0]
	assert.Equal(t, "Gold Bar 1kg", item.Name)
	require.NotNil(t, item.Purity)
	assert.Equal(t, "99.5", *item.Purity)
	require.NotNil(t, item.Grade)
	assert.Equal(t, "99.5%", *item.Grade)
	require.NotNil(t, item.Thumbnail)
	assert.Equal(t, "https://cdn.test/products/bar.jpg", *item.Thumbnail)
	require.NotNil(t, item.Category)
	assert.Equal(t, "gold", item.Category.Slug)
	require.NotNil(t, item.Location)
	assert.Equal(t, "Dubai", item.Location.Name)
}

func TestGetProducts_PaginacionConLinks(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.PaginatedProducts
	status := getJSON(t, app, "/api/products?per_page=1&purity=%3E%3D90", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Data, 1)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, out.LastPage)
	require.NotNil(t, out.NextPageURL)
	// El link conserva el filtro y apunta a la página siguiente.
	assert.Contains(t, *out.NextPageURL, "page=2")
	assert.Contains(t, *out.NextPageURL, "per_page=1")
	assert.Contains(t, *out.NextPageURL, "purity=%3E%3D90")
	assert.Nil(t, out.PrevPageURL)
}

func TestGetProducts_PaginaVacia(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.PaginatedProducts
	status := getJSON(t, app, "/api/products?page=9", &out)
	require.Equal(t, fiber.StatusOK, status)

	assert.Empty(t, out.Data)
	assert.Equal(t, 9, out.CurrentPage)
	assert.Nil(t, out.From)
	assert.Nil(t, out.To)
	assert.Nil(t, out.NextPageURL)
}

func TestGetCategories_ConConteo(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.CategoriesResponse
	status := getJSON(t, app, "/api/categories", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Gold", out.Categories[0].Name)
	assert.Equal(t, 1, out.Categories[0].ProductsCount)
}

func TestGetLocations_OrdenAlfabetico(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.LocationsResponse
	status := getJSON(t, app, "/api/locations", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Locations, 2)
	assert.Equal(t, "Dubai", out.Locations[0].Name)
	assert.Equal(t, "Ghana", out.Locations[1].Name)
}

func TestGetHighDemand_FormaCompleta(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.LatestProductsResponse
	status := getJSON(t, app, "/api/high-demand", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Products, 2)
	p := out.Products[0]
	assert.Equal(t, "Gold Bar 1kg", p.Name)
	require.NotNil(t, p.Origin)
	assert.Equal(t, "Dubai", *p.Origin)
	assert.Equal(t, []string{"https://cdn.test/products/bar-a.jpg"}, p.Images)
}

func TestGetPriceChanges_Delta(t *testing.T) {
	app := buildStorefrontApp(t)

	var out dto.PriceChangesResponse
	status := getJSON(t, app, "/api/price-changes", &out)
	require.Equal(t, fiber.StatusOK, status)

	require.Len(t, out.Products, 1)
	item := out.Products[0]
	assert.Equal(t, "p-bar", item.ID)
	require.NotNil(t, item.ChangePercent)
	assert.InDelta(t, 10.0, *item.ChangePercent, 0.001)
	require.NotNil(t, item.Image)
	assert.Equal(t, "https://cdn.test/products/bar.jpg", *item.Image)
}
