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

	"github.com/jhoicas/collectfast-api/internal/application/auth"
	"github.com/jhoicas/collectfast-api/internal/application/reporting"
	"github.com/jhoicas/collectfast-api/internal/application/session"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/memory"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/mockdata"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/pdf"
	"github.com/jhoicas/collectfast-api/internal/infrastructure/settings"
	httpRouter "github.com/jhoicas/collectfast-api/internal/interfaces/http"
	"github.com/jhoicas/collectfast-api/pkg/config"
	"github.com/jhoicas/collectfast-api/pkg/logger"
)

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

	// Dataset sintético: misma semilla => mismo dataset.
	generator := mockdata.NewGenerator(cfg.Mock.Seed, time.Now())
	datasets := generator.All()

	userDir := memory.NewUserDirectory(mockdata.Users(), mockdata.DefaultUserID)
	companyDir := memory.NewCompanyDirectory(mockdata.Companies())
	datasetStore := memory.NewDatasetStore(datasets)

	store, err := settings.NewFileStore(cfg.Session.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de preferencias")
	}

	authStore := auth.NewStore()
	resolver := session.NewResolver(userDir, companyDir, store, authStore, log)
	resolver.Initialize()

	aggregator := reporting.NewAggregator(datasetStore)
	authUC := auth.NewAuthUseCase(authStore, userDir, store, resolver, auth.JWTConfig{
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
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Collectfast API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Resolver:   resolver,
		Aggregator: aggregator,
		AuthUC:     authUC,
		AgingPDF:   pdf.NewAgingReportPDFGenerator(),
		JWTSecret:  cfg.JWT.Secret,
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
