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

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/application/usecase"
	"github.com/construsys/obras-api/internal/infrastructure/postgres"
	httpRouter "github.com/construsys/obras-api/internal/interfaces/http"
	"github.com/construsys/obras-api/pkg/config"
	"github.com/construsys/obras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	movRepo := postgres.NewMovimentacaoRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	ferramentaRepo := postgres.NewFerramentaRepository(pool)
	obraRepo := postgres.NewObraRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	emissor := almoxarifado.NewRegistrarMovimentacaoUseCase(txRunner)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	ferramentaUC := usecase.NewFerramentaUseCase(ferramentaRepo, txRunner, emissor)
	obraUC := usecase.NewObraUseCase(obraRepo)
	estoqueUC := usecase.NewEstoqueUseCase(movRepo, materialRepo, ferramentaRepo, obraRepo)
	relatorioUC := usecase.NewRelatorioUseCase(movRepo, materialRepo, obraRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Obras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:   materialUC,
		FerramentaUC: ferramentaUC,
		ObraUC:       obraUC,
		EstoqueUC:    estoqueUC,
		RelatorioUC:  relatorioUC,
		Emissor:      emissor,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
