package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abgdnv/inventory/internal/config"
	pb "github.com/abgdnv/inventory/pkg/api/gen/go/inventory/v1"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	"github.com/abgdnv/inventory/pkg/client/grpc/interceptors"
	"github.com/abgdnv/inventory/pkg/config/configloader"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const envPrefix = "inventoryctl"

type cli struct {
	configFile string
	addr       string

	cfg    *config.CtlConfig
	logger *slog.Logger

	// dialOptions are appended to the defaults, tests use them to dial over bufconn.
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
}

func newCLI() *cli {
	return &cli{}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "inventoryctl",
		Short:        "Operate the inventory catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			c.close()
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "inventoryctl.yaml", "path to the config file")
	root.PersistentFlags().StringVar(&c.addr, "addr", "", "inventory gRPC address, overrides grpc.addr")

	root.AddCommand(
		newDashboardCmd(c),
		newListCmd(c),
		newGetCmd(c),
		newAddCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
		newSellCmd(c),
		newWatchCmd(c),
	)
	return root
}

func (c *cli) init() error {
	cfg, err := configloader.Load[*config.CtlConfig](envPrefix,
		configloader.WithConfigFile(c.configFile),
		configloader.WithDefaults(config.CtlDefaults()),
	)
	if err != nil {
		return err
	}
	if c.addr != "" {
		cfg.GRPC.Addr = c.addr
	}
	c.cfg = cfg
	c.logger = bootstrap.NewLoggerTo(os.Stderr, cfg.Log.Level)
	return nil
}

// client dials the inventory service on first use. The timeout interceptor runs first so the
// deadline covers every retry attempt.
func (c *cli) client() (pb.ProductServiceClient, error) {
	if c.conn == nil {
		opts := []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithChainUnaryInterceptor(
				interceptors.UnaryClientTimeoutInterceptor(c.cfg.GRPC.Timeout),
				interceptors.NewRetryInterceptor(c.cfg.Resilience.Retry),
				interceptors.NewCircuitBreaker(c.cfg.Resilience.CircuitBreaker),
			),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		}
		conn, err := grpc.NewClient(c.cfg.GRPC.Addr, append(opts, c.dialOptions...)...)
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC client connection: %w", err)
		}
		c.conn = conn
	}
	return pb.NewProductServiceClient(c.conn), nil
}

func (c *cli) close() {
	if c.conn == nil {
		return
	}
	if err := c.conn.Close(); err != nil {
		c.logger.Error("Failed to close gRPC client connection", slog.String("error", err.Error()))
	}
	c.conn = nil
}
