// cmd/diet-plan/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mcp-diet-plan/internal/catalog"
	"mcp-diet-plan/internal/config"
	"mcp-diet-plan/internal/logging"
	"mcp-diet-plan/internal/server"
)

const version = "1.0.0"

var (
	configPath string
	host       string
	port       int
	dbPath     string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "diet-plan",
	Short:         "Diabetes diet plan questionnaire engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		// A missing .env is fine; variables may come from the environment.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wizard over HTTP",
	RunE:  runServe,
}

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Check that every condition and status has a complete plan and target",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Default().Validate(); err != nil {
			logger.Error("Catalog is incomplete", zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "catalog OK")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mcp-diet-plan version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")

	serveCmd.Flags().StringVar(&host, "host", "", "Host address (overrides config)")
	serveCmd.Flags().IntVar(&port, "port", 0, "Port for HTTP transport (overrides config)")
	serveCmd.Flags().StringVar(&dbPath, "db-path", "", "Database path (overrides config)")

	rootCmd.AddCommand(serveCmd, validateCatalogCmd, versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if host != "" {
		cfg.Server.Host = host
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	delay, err := cfg.PlanDelay()
	if err != nil {
		return err
	}

	srv, err := server.NewDietPlanServer(&server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		DBPath:         cfg.Storage.DBPath,
		PlanDelay:      delay,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case runErr = <-errCh:
		logger.Error("Server error", zap.Error(runErr))
	}

	logger.Info("Shutting down")
	cancel()
	if err := srv.Stop(); err != nil {
		logger.Warn("Error during shutdown", zap.Error(err))
	}
	return runErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
