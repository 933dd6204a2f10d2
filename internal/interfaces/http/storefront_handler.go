package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/storefront"
)

// StorefrontHandler expone los endpoints públicos de solo lectura del catálogo.
// Sin auth: lo consume el frontend público.
type StorefrontHandler struct {
	uc *storefront.UseCase
}

// NewStorefrontHandler construye el handler público.
func NewStorefrontHandler(uc *storefront.UseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// Categories godoc
// @Summary      Categorías públicas con conteo de productos
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *StorefrontHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Ubicaciones públicas
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.LocationsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *StorefrontHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.Locations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HighDemand godoc
// @Summary      Productos de alta demanda (los más recientes)
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.LatestProductsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/high-demand [get]
func (h *StorefrontHandler) HighDemand(c *fiber.Ctx) error {
	out, err := h.uc.LatestProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Featured godoc
// @Summary      Productos destacados (los más recientes)
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.LatestProductsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/featured [get]
func (h *StorefrontHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.LatestProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PriceChanges godoc
// @Summary      Últimos cambios de precio con porcentaje
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  dto.PriceChangesResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/price-changes [get]
func (h *StorefrontHandler) PriceChanges(c *fiber.Ctx) error {
	out, err := h.uc.PriceChanges()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Listado público filtrado y paginado
// @Tags         storefront
// @Produce      json
// @Param        category  query  string  false  "ID, slug o nombre de categoría"
// @Param        location  query  string  false  "ID o nombre de ubicación"
// @Param        purity    query  string  false  "Filtro de pureza: 95, >=95, >90, <=99, <50 o 95-100"
// @Param        page      query  int     false  "Página (desde 1)"
// @Param        per_page  query  int     false  "Tamaño de página (default 20, max 100)"
// @Success      200  {object}  dto.PaginatedProducts
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *StorefrontHandler) Products(c *fiber.Ctx) error {
	q := storefront.ProductsQuery{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Purity:   c.Query("purity"),
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("per_page", 0),
		BaseURL:  c.BaseURL() + c.Path(),
	}
	out, err := h.uc.Products(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
