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

	_ "github.com/jhoicas/Carta-api/docs"
	"github.com/jhoicas/Carta-api/internal/application/auth"
	"github.com/jhoicas/Carta-api/internal/application/menucard"
	appmenuimport "github.com/jhoicas/Carta-api/internal/application/menuimport"
	"github.com/jhoicas/Carta-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Carta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Carta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Carta-api/internal/infrastructure/tabular"
	httpRouter "github.com/jhoicas/Carta-api/internal/interfaces/http"
	"github.com/jhoicas/Carta-api/pkg/config"
	"github.com/jhoicas/Carta-api/pkg/logger"
)

// @title        Carta API
// @version      1.0
// @description  API de gestión de cartas de restaurante con carga masiva desde CSV/Excel.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subCategoryRepo)
	subCategoryUC := usecase.NewSubCategoryUseCase(subCategoryRepo, categoryRepo)
	menuItemUC := usecase.NewMenuItemUseCase(menuItemRepo, subCategoryRepo, categoryRepo)

	// Carga masiva: decodificador CSV/Excel + reconciliación transaccional
	fileDecoder := tabular.NewFileDecoder()
	importUC := appmenuimport.NewImportUseCase(
		fileDecoder, fileDecoder, categoryRepo, txRunner,
		log.Component("menuimport"),
	)

	// PDF de la carta
	pdfGenerator := infrapdf.NewMarotoMenuGenerator()
	menuCardUC := menucard.NewPDFUseCase(
		companyRepo, categoryRepo, subCategoryRepo, menuItemRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Import.MaxUploadBytes()) + 1024*1024,
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
		Title:    "Carta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:      companyUC,
		CategoryUC:     categoryUC,
		SubCategoryUC:  subCategoryUC,
		MenuItemUC:     menuItemUC,
		ImportUC:       importUC,
		MenuCardUC:     menuCardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		MaxUploadBytes: cfg.Import.MaxUploadBytes(),
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
