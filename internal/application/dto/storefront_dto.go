package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read-models públicos del storefront. Las claves JSON replican el contrato
// que ya consume el frontend; las relaciones ausentes serializan como null,
// nunca como error.

// CategorySummary resumen anidado de categoría en un producto.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryDetail resumen de categoría con imagen (variante "latest").
type CategoryDetail struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Image *string `json:"image"`
}

// LocationSummary resumen anidado de ubicación.
type LocationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagSummary resumen de etiqueta.
type TagSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductListItem forma liviana de producto para el listado paginado.
type ProductListItem struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Price     decimal.Decimal  `json:"price"`
	Purity    *string          `json:"purity"`
	Grade     *string          `json:"grade"`
	Thumbnail *string          `json:"thumbnail"`
	Image     *string          `json:"image"`
	Category  *CategorySummary `json:"category"`
	Location  *LocationSummary `json:"location"`
	Tags      []TagSummary     `json:"tags"`
}

// LatestProduct forma completa usada por high-demand y featured: agrega
// estado, detalle, galería, origen y badges (solo nombres de etiqueta).
type LatestProduct struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Price     decimal.Decimal   `json:"price"`
	Purity    *string           `json:"purity"`
	Grade     *string           `json:"grade"`
	Status    int               `json:"status"`
	Detail    map[string]string `json:"detail"`
	Thumbnail *string           `json:"thumbnail"`
	Images    []string          `json:"images"`
	Image     *string           `json:"image"`
	Category  *CategoryDetail   `json:"category"`
	Location  *LocationSummary  `json:"location"`
	Origin    *string           `json:"origin"`
	Tags      []TagSummary      `json:"tags"`
	Badges    []string          `json:"badges"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// PriceChangeItem delta histórico de precio de un producto.
type PriceChangeItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent *float64        `json:"change_percent"`
	Image         *string         `json:"image"`
}

// CategoryListItem fila del listado público de categorías.
type CategoryListItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Image         *string `json:"image"`
	ProductsCount int     `json:"products_count"`
}

// CategoriesResponse respuesta de GET /categories.
type CategoriesResponse struct {
	Categories []CategoryListItem `json:"categories"`
}

// LocationsResponse respuesta de GET /locations.
type LocationsResponse struct {
	Locations []LocationSummary `json:"locations"`
}

// LatestProductsResponse respuesta de high-demand y featured.
type LatestProductsResponse struct {
	Products []LatestProduct `json:"products"`
}

// PriceChangesResponse respuesta de GET /price-changes.
type PriceChangesResponse struct {
	Products []PriceChangeItem `json:"products"`
}

// PaginatedProducts respuesta paginada de GET /products, con metadatos de
// página al estilo del API anterior (el frontend ya los consume así).
type PaginatedProducts struct {
	Data        []ProductListItem `json:"data"`
	CurrentPage int               `json:"current_page"`
	PerPage     int               `json:"per_page"`
	Total       int               `json:"total"`
	LastPage    int               `json:"last_page"`
	From        *int              `json:"from"`
	To          *int              `json:"to"`
	NextPageURL *string           `json:"next_page_url"`
	PrevPageURL *string           `json:"prev_page_url"`
}
