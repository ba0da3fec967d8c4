// Package app contains the application setup for the inventory service.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/repository"
	"github.com/abgdnv/inventory/internal/store"
	grpcImpl "github.com/abgdnv/inventory/internal/transport/grpc"
	"github.com/abgdnv/inventory/internal/transport/rest"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	pconfig "github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/messaging"
	pnats "github.com/abgdnv/inventory/pkg/nats"
	"github.com/abgdnv/inventory/pkg/server"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
)

type Dependencies struct {
	Repository repository.ProductRepository
	Logger     *slog.Logger

	// MetricsHandler is mounted at MetricsPath when set.
	MetricsHandler http.Handler
	MetricsPath    string
}

func SetupDependencies(productStore store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Repository: repository.NewRepository(productStore, publisher),
		Logger:     logger,
	}
}

// NewStore opens the product store selected by cfg.Driver. The returned close function
// releases the store's resources and is never nil.
func NewStore(ctx context.Context, cfg pconfig.DatabaseConfig, logger *slog.Logger) (store.ProductStore, func(), error) {
	if cfg.Driver == pconfig.DriverMemory {
		logger.Warn("Using in-memory product store, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Successfully connected to the database!")

	if cfg.Migrate {
		if err := store.Migrate(cfg.URL); err != nil {
			dbPool.Close()
			return nil, nil, err
		}
		logger.Info("Database schema is up to date")
	}
	return store.NewPgStore(dbPool), dbPool.Close, nil
}

// NewPublisher connects to NATS and makes sure the product stream exists. With NATS
// disabled, events are dropped.
func NewPublisher(ctx context.Context, cfg pconfig.NATSConfig, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled {
		return messaging.NopPublisher{}, func() {}, nil
	}

	nc, err := pnats.NewClient(cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := pnats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	streamCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if _, err := pnats.EnsureStream(streamCtx, js, cfg.Stream); err != nil {
		nc.Close()
		return nil, nil, err
	}
	logger.Info("Publishing product events", slog.String("stream", cfg.Stream), slog.String("url", cfg.Url))

	closeFn := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("Failed to drain NATS connection", slog.String("error", err.Error()))
		}
	}
	return pnats.NewNatsPublisher(js), closeFn, nil
}

// SetupHttpHandler builds the router with the product routes, health checks and metrics endpoint.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return otelhttp.NewHandler(mux, "inventory")
}

// wireRoutes sets up the HTTP routes for the inventory service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.Repository, deps.Logger)
	productHandler.RegisterRoutes(mux)
	if deps.MetricsHandler != nil {
		mux.Method(http.MethodGet, deps.MetricsPath, deps.MetricsHandler)
	}
}

// SetupHttpServer creates and configures an HTTP server for the inventory service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, SetupHttpHandler(deps))
}

// SetupGrpcServer initializes the gRPC server for the inventory service.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	productRegisterFunc := func(s *grpc.Server) {
		pb.RegisterProductServiceServer(s, grpcImpl.NewServer(deps.Repository))
	}
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, productRegisterFunc)
}

