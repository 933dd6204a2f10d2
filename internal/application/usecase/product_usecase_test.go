package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct {
	items map[string]*entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[string]*entity.Product{}}
}

func (m *memProducts) Create(p *entity.Product) error {
	for _, existing := range m.items {
		if existing.Slug == p.Slug {
			return domain.ErrSlugTaken
		}
	}
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(id string) (*entity.Product, error) {
	p := m.items[id]
	if p == nil || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.Slug == slug && p.DeletedAt == nil {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Update(p *entity.Product) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if filter.OnlyTrashed && p.DeletedAt == nil {
			continue
		}
		if !filter.OnlyTrashed && !filter.WithTrashed && p.DeletedAt != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Count(filter repository.ProductFilter) (int, error) {
	list, _ := m.List(filter)
	return len(list), nil
}

func (m *memProducts) SoftDelete(id string, at time.Time) error {
	if p := m.items[id]; p != nil {
		p.DeletedAt = &at
	}
	return nil
}

func (m *memProducts) Restore(id string) error {
	if p := m.items[id]; p != nil {
		p.DeletedAt = nil
	}
	return nil
}

func (m *memProducts) ForceDelete(id string) error {
	delete(m.items, id)
	return nil
}

type memCategories struct {
	items map[string]*entity.Category
}

func (m *memCategories) Create(*entity.Category) error      { return nil }
func (m *memCategories) Update(*entity.Category) error      { return nil }
func (m *memCategories) SoftDelete(string, time.Time) error { return nil }

func (m *memCategories) GetByID(id string) (*entity.Category, error) { return m.items[id], nil }

func (m *memCategories) GetBySlug(slug string) (*entity.Category, error) {
	for _, c := range m.items {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCategories) GetByIDs(ids []string) (map[string]*entity.Category, error) {
	out := map[string]*entity.Category{}
	for _, id := range ids {
		if c, ok := m.items[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (m *memCategories) List(int, int) ([]*entity.Category, error) { return nil, nil }

func (m *memCategories) ListWithProductCount() ([]*entity.CategoryWithCount, error) {
	return nil, nil
}

type memLocations struct {
	items map[string]*entity.Location
}

func (m *memLocations) Create(*entity.Location) error { return nil }
func (m *memLocations) Update(*entity.Location) error { return nil }
func (m *memLocations) Delete(string) error           { return nil }

func (m *memLocations) GetByID(id string) (*entity.Location, error) { return m.items[id], nil }

func (m *memLocations) GetBySlug(slug string) (*entity.Location, error) {
	for _, l := range m.items {
		if l.Slug == slug {
			return l, nil
		}
	}
	return nil, nil
}

func (m *memLocations) GetByIDs(ids []string) (map[string]*entity.Location, error) {
	out := map[string]*entity.Location{}
	for _, id := range ids {
		if l, ok := m.items[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (m *memLocations) ListAll() ([]*entity.Location, error) { return nil, nil }

type memTags struct {
	synced map[string][]string // ownerID -> tagIDs
}

func newMemTags() *memTags { return &memTags{synced: map[string][]string{}} }

func (m *memTags) Create(*entity.Tag) error              { return nil }
func (m *memTags) GetByID(string) (*entity.Tag, error)   { return nil, nil }
func (m *memTags) GetBySlug(string) (*entity.Tag, error) { return nil, nil }
func (m *memTags) Update(*entity.Tag) error              { return nil }
func (m *memTags) List(int, int) ([]*entity.Tag, error)  { return nil, nil }
func (m *memTags) SoftDelete(string, time.Time) error    { return nil }

func (m *memTags) SyncFor(owner entity.Taggable, tagIDs []string) error {
	m.synced[owner.TaggableID()] = tagIDs
	return nil
}

func (m *memTags) ListFor(owner entity.Taggable) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, id := range m.synced[owner.TaggableID()] {
		out = append(out, &entity.Tag{ID: id, Name: id, Slug: id})
	}
	return out, nil
}

func (m *memTags) ListForOwners(string, []string) (map[string][]*entity.Tag, error) {
	return nil, nil
}

type memMedia struct {
	// ownerID -> colección -> rutas
	replaced map[string]map[string][]string
	deleted  []string
}

func newMemMedia() *memMedia { return &memMedia{replaced: map[string]map[string][]string{}} }

func (m *memMedia) Replace(_, ownerID, collection string, paths []string) error {
	if m.replaced[ownerID] == nil {
		m.replaced[ownerID] = map[string][]string{}
	}
	m.replaced[ownerID][collection] = paths
	return nil
}

func (m *memMedia) ListFor(string, string, string) ([]*entity.Media, error) { return nil, nil }

func (m *memMedia) MapForOwners(_ string, ownerIDs []string) (map[string]map[string][]*entity.Media, error) {
	out := map[string]map[string][]*entity.Media{}
	for _, id := range ownerIDs {
		collections, ok := m.replaced[id]
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

func (m *memMedia) DeleteFor(_, ownerID string) error {
	m.deleted = append(m.deleted, ownerID)
	delete(m.replaced, ownerID)
	return nil
}

type memActivities struct {
	items []*entity.Activity
}

func (m *memActivities) Record(a *entity.Activity) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memActivities) ListPriceChanges(int) ([]*entity.Activity, error) { return nil, nil }

// memTxRunner pasa los mismos fakes al callback; no hay transacción real.
type memTxRunner struct {
	products   *memProducts
	tags       *memTags
	media      *memMedia
	activities *memActivities
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
	activities repository.ActivityRepository,
) error) error {
	return fn(r.products, r.tags, r.media, r.activities)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCategoryID = "cat-1"
	testLocationID = "loc-1"
	testActorID    = "admin-1"
)

type productFixture struct {
	uc         *ProductUseCase
	products   *memProducts
	tags       *memTags
	media      *memMedia
	activities *memActivities
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	products := newMemProducts()
	tags := newMemTags()
	media := newMemMedia()
	activities := &memActivities{}
	categories := &memCategories{items: map[string]*entity.Category{
		testCategoryID: {ID: testCategoryID, Name: "Gold", Slug: "gold"},
	}}
	locations := &memLocations{items: map[string]*entity.Location{
		testLocationID: {ID: testLocationID, Name: "Dubai", Slug: "dubai"},
	}}
	tx := &memTxRunner{products: products, tags: tags, media: media, activities: activities}

	return &productFixture{
		uc:         NewProductUseCase(products, categories, locations, tags, media, tx),
		products:   products,
		tags:       tags,
		media:      media,
		activities: activities,
	}
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		CategoryID: testCategoryID,
		LocationID: testLocationID,
		Name:       "Gold Bar 1kg",
		Price:      decimal.NewFromInt(1000),
		Purity:     95,
		Status:     entity.ProductStatusActive,
		TagIDs:     []string{"t-22k"},
		Thumbnail:  "products/bar.jpg",
		Images:     []string{"products/bar-a.jpg"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DerivaSlugYRegistraActividad(t *testing.T) {
	f := newProductFixture(t)

	out, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "gold-bar-1kg", out.Slug)
	assert.Equal(t, "95", out.Purity)
	assert.Equal(t, testActorID, out.CreatedBy)

	// Etiquetas y media sincronizadas.
	assert.Equal(t, []string{"t-22k"}, f.tags.synced[out.ID])
	assert.Equal(t, []string{"products/bar.jpg"}, f.media.replaced[out.ID]["thumbnail"])
	assert.Equal(t, []string{"products/bar-a.jpg"}, f.media.replaced[out.ID]["images"])

	// Actividad de creación con snapshot, sin old.
	require.Len(t, f.activities.items, 1)
	a := f.activities.items[0]
	assert.Equal(t, "created", a.Description)
	assert.Equal(t, out.ID, a.SubjectID)
	assert.Equal(t, testActorID, a.CauserID)
	assert.Empty(t, a.Properties.Old)
	assert.Equal(t, "1000", a.Properties.Attributes["price"])
}

func TestProductCreate_SlugDuplicadoRechazado(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)

	// Mismo nombre → mismo slug → conflicto.
	_, err = f.uc.Create(testActorID, validCreate())
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestProductCreate_Validaciones(t *testing.T) {
	f := newProductFixture(t)

	// Caso 1: sin nombre.
	in := validCreate()
	in.Name = ""
	_, err := f.uc.Create(testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 2: sin thumbnail.
	in = validCreate()
	in.Thumbnail = ""
	_, err = f.uc.Create(testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 3: precio negativo.
	in = validCreate()
	in.Price = decimal.NewFromInt(-1)
	_, err = f.uc.Create(testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 4: pureza fuera de rango.
	in = validCreate()
	in.Purity = 101
	_, err = f.uc.Create(testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Caso 5: categoría inexistente.
	in = validCreate()
	in.CategoryID = "no-existe"
	_, err = f.uc.Create(testActorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PurezaCeroTomaDefault(t *testing.T) {
	f := newProductFixture(t)

	in := validCreate()
	in.Purity = 0
	out, err := f.uc.Create(testActorID, in)
	require.NoError(t, err)
	assert.Equal(t, "100", out.Purity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_RegistraDiffsDePrecio(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)
	f.activities.items = nil

	newPrice := decimal.NewFromInt(1100)
	out, err := f.uc.Update(testActorID, created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Price.Equal(newPrice))

	require.Len(t, f.activities.items, 1)
	a := f.activities.items[0]
	assert.Equal(t, "updated", a.Description)
	assert.Equal(t, "1000", a.Properties.Old["price"])
	assert.Equal(t, "1100", a.Properties.Attributes["price"])
}

func TestProductUpdate_SlugInmutableAunqueCambieNombre(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)

	newName := "Gold Bar One Kilogram"
	out, err := f.uc.Update(testActorID, created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, out.Name)
	assert.Equal(t, "gold-bar-1kg", out.Slug)
}

func TestProductUpdate_SinCambiosNoRegistraActividad(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)
	f.activities.items = nil

	samePrice := decimal.NewFromInt(1000)
	_, err = f.uc.Update(testActorID, created.ID, dto.UpdateProductRequest{Price: &samePrice})
	require.NoError(t, err)
	assert.Empty(t, f.activities.items)
}

func TestProductUpdate_ProductoInexistenteDevuelveNil(t *testing.T) {
	f := newProductFixture(t)

	out, err := f.uc.Update(testActorID, "no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / Restore / ForceDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_SuaveYRestore(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(testActorID, created.ID))

	// Borrado: GetByID ya no lo ve.
	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Pero sigue en el listado de borrados.
	trashed, err := f.uc.List(20, 0, true)
	require.NoError(t, err)
	require.Len(t, trashed.Items, 1)

	require.NoError(t, f.uc.Restore(created.ID))
	got, err = f.uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestProductDelete_InexistenteDevuelveNotFound(t *testing.T) {
	f := newProductFixture(t)
	err := f.uc.Delete(testActorID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductForceDelete_EliminaMedia(t *testing.T) {
	f := newProductFixture(t)
	created, err := f.uc.Create(testActorID, validCreate())
	require.NoError(t, err)

	require.NoError(t, f.uc.ForceDelete(created.ID))
	assert.Contains(t, f.media.deleted, created.ID)

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
