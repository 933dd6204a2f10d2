package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/tu-usuario/catalogo-api/docs"
	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/reports"
	"github.com/tu-usuario/catalogo-api/internal/application/storefront"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	inframedia "github.com/tu-usuario/catalogo-api/internal/infrastructure/media"
	infrapdf "github.com/tu-usuario/catalogo-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalogo-api/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-api/pkg/config"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// @title        Catálogo API
// @version      1.0
// @description  API pública del catálogo de productos + panel de administración.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := inframedia.NewResolver(cfg.Media.BaseURL)

	storefrontUC := storefront.NewUseCase(
		productRepo, categoryRepo, locationRepo, tagRepo, mediaRepo, activityRepo, resolver,
	)
	productUC := usecase.NewProductUseCase(
		productRepo, categoryRepo, locationRepo, tagRepo, mediaRepo, txRunner,
	)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, mediaRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)

	pdfGenerator := infrapdf.NewMarotoPriceListGenerator()
	priceListUC := reports.NewPriceListUseCase(productRepo, categoryRepo, locationRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StorefrontUC: storefrontUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		LocationUC:   locationUC,
		TagUC:        tagUC,
		PriceListUC:  priceListUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
