package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaswanthreddy/portfolio/internal/config"
	"github.com/yaswanthreddy/portfolio/internal/server"
	"github.com/yaswanthreddy/portfolio/internal/server/middleware"
)

var (
	servePort        int
	serveConfigPath  string
	serveContentPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long:  `Start an HTTP server that serves the dashboard views, the card and chart APIs, and the contact form.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveContentPath, "content", "", "Path to portfolio content (JSON or YAML); built-in content when empty")
	rootCmd.AddCommand(serveCmd)
}

// serveConfig resolves the layered config and applies explicitly set flags on top.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = serveContentPath
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		return err
	}

	portfolio, err := loadPortfolio(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	cards, err := loadCards(cfg.TemplateDir)
	if err != nil {
		return fmt.Errorf("failed to load card templates: %w", err)
	}

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := newContactService(cfg, store, logger)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		Portfolio:      portfolio,
		Cards:          cards,
		Contact:        svc,
		Logger:         logger,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: trustedProxies,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
