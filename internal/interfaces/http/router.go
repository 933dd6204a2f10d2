package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/reports"
	"github.com/tu-usuario/catalogo-api/internal/application/storefront"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StorefrontUC *storefront.UseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	LocationUC   *usecase.LocationUseCase
	TagUC        *usecase.TagUseCase
	PriceListUC  *reports.PriceListUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. El storefront es público; el panel
// admin exige Bearer Token, y las escrituras destructivas rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Storefront (público, solo lectura)
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)
	api.Get("/categories", storefrontHandler.Categories)
	api.Get("/locations", storefrontHandler.Locations)
	api.Get("/price-changes", storefrontHandler.PriceChanges)
	api.Get("/high-demand", storefrontHandler.HighDemand)
	api.Get("/featured", storefrontHandler.Featured)
	api.Get("/products", storefrontHandler.Products)

	// Panel admin (requiere Bearer Token; editor puede escribir, solo admin
	// restaura o borra definitivamente)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleEditor),
	)
	adminOnly := RequireRole(entity.RoleAdmin)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/restore", adminOnly, productHandler.Restore)
	products.Delete("/:id/force", adminOnly, productHandler.ForceDelete)

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	locations := admin.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", adminOnly, locationHandler.Delete)

	tags := admin.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", adminOnly, tagHandler.Delete)

	reportsGroup := admin.Group("/reports")
	reportHandler := NewReportHandler(deps.PriceListUC)
	reportsGroup.Get("/price-list", reportHandler.PriceListPDF)
}
