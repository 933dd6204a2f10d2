package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	gslug "github.com/gosimple/slug"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ProductUseCase CRUD admin de productos. Reglas del formulario de admin como
// validación explícita de servidor; todo create/update recibe el actor como
// parámetro (nada de sesión ambiente) y deja rastro en el log de auditoría.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	tags       repository.TagRepository
	media      repository.MediaRepository
	tx         CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	locations repository.LocationRepository,
	tags repository.TagRepository,
	media repository.MediaRepository,
	tx CatalogTxRunner,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		locations:  locations,
		tags:       tags,
		media:      media,
		tx:         tx,
	}
}

// Create crea un producto: valida, deriva el slug del nombre (inmutable
// después) y persiste producto + etiquetas + media + actividad en una
// transacción. actorID es el usuario admin que ejecuta la operación.
func (uc *ProductUseCase) Create(actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Thumbnail == "" {
		return nil, fmt.Errorf("%w: thumbnail es requerido", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Purity == 0 {
		in.Purity = 100 // default del formulario
	}
	if in.Purity < 1 || in.Purity > 100 {
		return nil, fmt.Errorf("%w: purity debe ser un entero entre 1 y 100", domain.ErrInvalidInput)
	}
	if in.Status < entity.ProductStatusDraft || in.Status > entity.ProductStatusInactive {
		return nil, fmt.Errorf("%w: status debe ser 0, 1 o 2", domain.ErrInvalidInput)
	}
	if err := uc.checkRelations(in.CategoryID, in.LocationID); err != nil {
		return nil, err
	}

	s := gslug.Make(in.Name)
	if existing, err := uc.products.GetBySlug(s); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		Price:       in.Price,
		Purity:      strconv.Itoa(in.Purity),
		Status:      in.Status,
		Detail:      in.Detail,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		tags repository.TagRepository,
		media repository.MediaRepository,
		activities repository.ActivityRepository,
	) error {
		if err := products.Create(product); err != nil {
			return err
		}
		if err := tags.SyncFor(product, in.TagIDs); err != nil {
			return err
		}
		if err := media.Replace(entity.MediaOwnerProducts, product.ID, entity.MediaCollectionThumbnail, []string{in.Thumbnail}); err != nil {
			return err
		}
		if err := media.Replace(entity.MediaOwnerProducts, product.ID, entity.MediaCollectionImages, in.Images); err != nil {
			return err
		}
		return activities.Record(&entity.Activity{
			ID:          uuid.New().String(),
			LogName:     entity.LogNameProducts,
			Description: "created",
			SubjectType: entity.TaggableTypeProduct,
			SubjectID:   product.ID,
			CauserID:    actorID,
			Properties: entity.ActivityChanges{
				Attributes: snapshotAttributes(product),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Update actualiza campos presentes. El slug no se recalcula aunque cambie el
// nombre. Los diffs de campo (old/new) se registran en el log de auditoría;
// de ahí salen los deltas de /price-changes.
func (uc *ProductUseCase) Update(actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	old := map[string]any{}
	attrs := map[string]any{}
	track := func(field string, oldVal, newVal any) {
		old[field] = oldVal
		attrs[field] = newVal
	}

	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		if err := uc.checkRelations(*in.CategoryID, product.LocationID); err != nil {
			return nil, err
		}
		track("category_id", product.CategoryID, *in.CategoryID)
		product.CategoryID = *in.CategoryID
	}
	if in.LocationID != nil && *in.LocationID != product.LocationID {
		if err := uc.checkRelations(product.CategoryID, *in.LocationID); err != nil {
			return nil, err
		}
		track("location_id", product.LocationID, *in.LocationID)
		product.LocationID = *in.LocationID
	}
	if in.Name != nil && *in.Name != product.Name {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		track("name", product.Name, *in.Name)
		product.Name = *in.Name
	}
	if in.Description != nil && *in.Description != product.Description {
		track("description", product.Description, *in.Description)
		product.Description = *in.Description
	}
	if in.Price != nil && !in.Price.Equal(product.Price) {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		track("price", product.Price.String(), in.Price.String())
		product.Price = *in.Price
	}
	if in.Purity != nil {
		if *in.Purity < 1 || *in.Purity > 100 {
			return nil, fmt.Errorf("%w: purity debe ser un entero entre 1 y 100", domain.ErrInvalidInput)
		}
		if p := strconv.Itoa(*in.Purity); p != product.Purity {
			track("purity", product.Purity, p)
			product.Purity = p
		}
	}
	if in.Status != nil && *in.Status != product.Status {
		if *in.Status < entity.ProductStatusDraft || *in.Status > entity.ProductStatusInactive {
			return nil, fmt.Errorf("%w: status debe ser 0, 1 o 2", domain.ErrInvalidInput)
		}
		track("status", product.Status, *in.Status)
		product.Status = *in.Status
	}
	if in.Detail != nil {
		product.Detail = *in.Detail
	}
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		tags repository.TagRepository,
		media repository.MediaRepository,
		activities repository.ActivityRepository,
	) error {
		if err := products.Update(product); err != nil {
			return err
		}
		if in.TagIDs != nil {
			if err := tags.SyncFor(product, *in.TagIDs); err != nil {
				return err
			}
		}
		if in.Thumbnail != nil {
			if err := media.Replace(entity.MediaOwnerProducts, product.ID, entity.MediaCollectionThumbnail, []string{*in.Thumbnail}); err != nil {
				return err
			}
		}
		if in.Images != nil {
			if err := media.Replace(entity.MediaOwnerProducts, product.ID, entity.MediaCollectionImages, *in.Images); err != nil {
				return err
			}
		}
		if len(attrs) == 0 {
			return nil
		}
		return activities.Record(&entity.Activity{
			ID:          uuid.New().String(),
			LogName:     entity.LogNameProducts,
			Description: "updated",
			SubjectType: entity.TaggableTypeProduct,
			SubjectID:   product.ID,
			CauserID:    actorID,
			Properties:  entity.ActivityChanges{Attributes: attrs, Old: old},
			CreatedAt:   product.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto por ID (nil si no existe o está borrado).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// List listado admin con paginación y filtro de borrados.
func (uc *ProductUseCase) List(limit, offset int, onlyTrashed bool) (*dto.ProductListAdminResponse, error) {
	filter := repository.ProductFilter{
		Limit:       limit,
		Offset:      offset,
		WithTrashed: onlyTrashed,
		OnlyTrashed: onlyTrashed,
	}
	list, err := uc.products.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		r, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	return &dto.ProductListAdminResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borrado suave: el producto desaparece de todo listado público pero
// puede restaurarse.
func (uc *ProductUseCase) Delete(actorID, id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.SoftDelete(id, time.Now())
}

// Restore revierte un borrado suave.
func (uc *ProductUseCase) Restore(id string) error {
	return uc.products.Restore(id)
}

// ForceDelete elimina definitivamente el producto y sus adjuntos.
func (uc *ProductUseCase) ForceDelete(id string) error {
	if err := uc.media.DeleteFor(entity.MediaOwnerProducts, id); err != nil {
		return err
	}
	return uc.products.ForceDelete(id)
}

func (uc *ProductUseCase) checkRelations(categoryID, locationID string) error {
	if categoryID == "" || locationID == "" {
		return fmt.Errorf("%w: category_id y location_id son requeridos", domain.ErrInvalidInput)
	}
	cat, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("%w: la categoría no existe", domain.ErrInvalidInput)
	}
	loc, err := uc.locations.GetByID(locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("%w: la ubicación no existe", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	tags, err := uc.tags.ListFor(p)
	if err != nil {
		return nil, err
	}
	tagOut := make([]dto.TagSummary, 0, len(tags))
	for _, t := range tags {
		tagOut = append(tagOut, dto.TagSummary{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	mediaByOwner, err := uc.media.MapForOwners(entity.MediaOwnerProducts, []string{p.ID})
	if err != nil {
		return nil, err
	}
	var thumb *string
	if list := mediaByOwner[p.ID][entity.MediaCollectionThumbnail]; len(list) > 0 {
		thumb = &list[0].FilePath
	}
	var images []string
	for _, m := range mediaByOwner[p.ID][entity.MediaCollectionImages] {
		images = append(images, m.FilePath)
	}

	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		LocationID:  p.LocationID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Purity:      p.Purity,
		Status:      p.Status,
		Detail:      p.Detail,
		Tags:        tagOut,
		Thumbnail:   thumb,
		Images:      images,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}, nil
}

// snapshotAttributes valores registrados al crear (sin old).
func snapshotAttributes(p *entity.Product) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"slug":        p.Slug,
		"price":       p.Price.String(),
		"purity":      p.Purity,
		"status":      p.Status,
		"category_id": p.CategoryID,
		"location_id": p.LocationID,
	}
}
