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

// TagUseCase CRUD admin de etiquetas.
type TagUseCase struct {
	tags repository.TagRepository
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(tags repository.TagRepository) *TagUseCase {
	return &TagUseCase{tags: tags}
}

// Create crea una etiqueta con slug derivado del nombre.
func (uc *TagUseCase) Create(actorID string, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	s := gslug.Make(in.Name)
	if existing, err := uc.tags.GetBySlug(s); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrSlugTaken
	}
	now := time.Now()
	tag := &entity.Tag{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      s,
		Status:    in.Status,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tags.Create(tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// Update actualiza nombre/estado. Slug inmutable.
func (uc *TagUseCase) Update(id string, in dto.UpdateTagRequest) (*dto.TagResponse, error) {
	tag, err := uc.tags.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		tag.Name = *in.Name
	}
	if in.Status != nil {
		tag.Status = *in.Status
	}
	tag.UpdatedAt = time.Now()
	if err := uc.tags.Update(tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// List listado admin paginado.
func (uc *TagUseCase) List(limit, offset int) ([]dto.TagResponse, error) {
	list, err := uc.tags.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTagResponse(t))
	}
	return items, nil
}

// Delete borrado suave.
func (uc *TagUseCase) Delete(id string) error {
	tag, err := uc.tags.GetByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	return uc.tags.SoftDelete(id, time.Now())
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Status:    t.Status,
		CreatedBy: t.CreatedBy,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}
