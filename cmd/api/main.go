package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/martinuzal/pharmind-api/internal/application/auth"
	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/esquema"
	"github.com/martinuzal/pharmind-api/internal/application/usecase"
	"github.com/martinuzal/pharmind-api/internal/infrastructure/postgres"
	httpRouter "github.com/martinuzal/pharmind-api/internal/interfaces/http"
	"github.com/martinuzal/pharmind-api/pkg/config"
	"github.com/martinuzal/pharmind-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	esquemaRepo := postgres.NewEsquemaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	agenteRepo := postgres.NewAgenteRepository(pool)
	relacionRepo := postgres.NewRelacionRepository(pool)
	interaccionRepo := postgres.NewInteraccionRepository(pool)
	dinamicaRepo := postgres.NewEntidadDinamicaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)
	esquemaUC := esquema.NewUseCase(esquemaRepo)
	clienteUC := crm.NewClienteUseCase(txRunner, esquemaRepo, catalogoRepo, clienteRepo, dinamicaRepo, log)
	agenteUC := crm.NewAgenteUseCase(txRunner, esquemaRepo, catalogoRepo, agenteRepo, dinamicaRepo, log)
	relacionUC := crm.NewRelacionUseCase(txRunner, esquemaRepo, clienteRepo, agenteRepo, relacionRepo, dinamicaRepo, log)
	interaccionUC := crm.NewInteraccionUseCase(txRunner, esquemaRepo, catalogoRepo, clienteRepo, agenteRepo,
		relacionRepo, interaccionRepo, dinamicaRepo, log)

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
		Title:    "Pharmind API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmpresaUC:     empresaUC,
		CatalogoUC:    catalogoUC,
		EsquemaUC:     esquemaUC,
		ClienteUC:     clienteUC,
		AgenteUC:      agenteUC,
		RelacionUC:    relacionUC,
		InteraccionUC: interaccionUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	// /metrics en un listener aparte para no exponer Prometheus en el puerto público.
	metricsSrv := &http.Server{Addr: cfg.HTTP.MetricsAddr(), Handler: promhttp.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("servidor de métricas finalizado")
		}
	}()

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
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor de métricas")
	}

	log.Info().Msg("aplicación detenida")
}
