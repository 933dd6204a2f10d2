package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	gslug "github.com/gosimple/slug"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// CategoryUseCase CRUD admin de categorías.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	media      repository.MediaRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, media repository.MediaRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, media: media}
}

// Create crea una categoría con slug derivado del nombre (inmutable después).
func (uc *CategoryUseCase) Create(actorID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	s := gslug.Make(in.Name)
	if existing, err := uc.categories.GetBySlug(s); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrSlugTaken
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	if in.Image != "" {
		if err := uc.media.Replace(entity.MediaOwnerCategories, category.ID, entity.MediaCollectionCategories, []string{in.Image}); err != nil {
			return nil, err
		}
	}
	return uc.toResponse(category)
}

// Update actualiza nombre/descripción/imagen. Slug inmutable.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	if in.Image != nil {
		paths := []string{}
		if *in.Image != "" {
			paths = []string{*in.Image}
		}
		if err := uc.media.Replace(entity.MediaOwnerCategories, category.ID, entity.MediaCollectionCategories, paths); err != nil {
			return nil, err
		}
	}
	return uc.toResponse(category)
}

// GetByID obtiene una categoría (nil si no existe o está borrada).
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return uc.toResponse(category)
}

// List listado admin paginado.
func (uc *CategoryUseCase) List(limit, offset int) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		r, err := uc.toResponse(c)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	return items, nil
}

// Delete borrado suave.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.SoftDelete(id, time.Now())
}

func (uc *CategoryUseCase) toResponse(c *entity.Category) (*dto.CategoryResponse, error) {
	mediaList, err := uc.media.ListFor(entity.MediaOwnerCategories, c.ID, entity.MediaCollectionCategories)
	if err != nil {
		return nil, err
	}
	var image *string
	if len(mediaList) > 0 {
		image = &mediaList[0].FilePath
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       image,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}, nil
}
