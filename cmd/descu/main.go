package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"descu/config"
	"descu/internal/delivery"
	"descu/internal/delivery/http"
	"descu/internal/delivery/http/middleware"
	"descu/internal/delivery/http/router/handler"
	"descu/internal/domain/entity"
	"descu/internal/domain/service"
	"descu/internal/infra/auth"
	"descu/internal/infra/generator"
	"descu/internal/infra/i18n"
	"descu/internal/infra/location"
	logs "descu/internal/infra/log"
	"descu/internal/infra/persistence/memory"
	"descu/internal/infra/pubsub"
	"descu/internal/infra/qrcode"
	"descu/internal/infra/suggest"
	"descu/internal/usecase"
	"descu/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(
			seedCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCatalogStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			i18n.NewLocalizer,
			location.NewProvider,
			suggest.NewGeminiClient,
			newCatalogGenerator,
			newQRCodeService,
		),
	)
}

// newCatalogGenerator creates the synthetic catalog generator with a
// wall-clock seed; tests inject their own seeded source.
func newCatalogGenerator() service.CatalogGenerator {
	return generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewListingHandler,
			handler.NewSuggestHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedCatalog populates the synthetic catalog before the server starts
// taking requests.
func seedCatalog(ctx context.Context, cfg *config.Config, uc usecase.CatalogUsecase, logger *slog.Logger) error {
	locale := entity.Locale(cfg.Catalog.DefaultLocale)
	count, err := uc.Reseed(ctx, locale)
	if err != nil {
		return err
	}

	logger.Info("Initial catalog seeded", slog.Int("count", count))

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
