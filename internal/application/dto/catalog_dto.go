package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs del panel admin. Las reglas de campo replican las del formulario
// de admin anterior: name requerido, slug derivado y único, price >= 0, purity entero
// 1..100, status 0|1|2, thumbnail requerido en productos.

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Image       string `json:"image"` // ruta en el almacenamiento público
}

// UpdateCategoryRequest entrada para actualizar (slug inmutable).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// CategoryResponse salida admin de una categoría.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Image       *string    `json:"image"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateLocationRequest entrada para actualizar una ubicación.
type UpdateLocationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// LocationResponse salida admin de una ubicación.
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTagRequest entrada para crear una etiqueta.
type CreateTagRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Status int    `json:"status"`
}

// UpdateTagRequest entrada para actualizar una etiqueta (slug inmutable).
type UpdateTagRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Status *int    `json:"status"`
}

// TagResponse salida admin de una etiqueta.
type TagResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Status    int        `json:"status"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID  string            `json:"category_id" validate:"required"`
	LocationID  string            `json:"location_id" validate:"required"`
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Purity      int               `json:"purity" validate:"min=1,max=100"`
	Status      int               `json:"status"`
	Detail      map[string]string `json:"detail"`
	TagIDs      []string          `json:"tag_ids"`
	Thumbnail   string            `json:"thumbnail" validate:"required"`
	Images      []string          `json:"images"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no se
// tocan; slug inmutable aunque cambie el nombre.
type UpdateProductRequest struct {
	CategoryID  *string            `json:"category_id"`
	LocationID  *string            `json:"location_id"`
	Name        *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string            `json:"description"`
	Price       *decimal.Decimal   `json:"price"`
	Purity      *int               `json:"purity" validate:"omitempty,min=1,max=100"`
	Status      *int               `json:"status"`
	Detail      *map[string]string `json:"detail"`
	TagIDs      *[]string          `json:"tag_ids"`
	Thumbnail   *string            `json:"thumbnail"`
	Images      *[]string          `json:"images"`
}

// ProductResponse salida admin de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	CategoryID  string            `json:"category_id"`
	LocationID  string            `json:"location_id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Purity      string            `json:"purity"`
	Status      int               `json:"status"`
	Detail      map[string]string `json:"detail"`
	Tags        []TagSummary      `json:"tags"`
	Thumbnail   *string           `json:"thumbnail"`
	Images      []string          `json:"images"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   *time.Time        `json:"deleted_at,omitempty"`
}

// ProductListAdminResponse listado admin paginado.
type ProductListAdminResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PageResponse metadatos de página en respuestas admin.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
