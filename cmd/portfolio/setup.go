package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yaswanthreddy/portfolio/internal/config"
	"github.com/yaswanthreddy/portfolio/internal/contact"
	"github.com/yaswanthreddy/portfolio/internal/content"
	"github.com/yaswanthreddy/portfolio/internal/db"
	"github.com/yaswanthreddy/portfolio/internal/rendering"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

// resolveConfig layers environment over the optional config file over defaults.
func resolveConfig(path string) (config.Config, error) {
	var file config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		file = *loaded
	}

	env, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	merged := env.MergeWithDefaults(file)
	return merged.MergeWithDefaults(config.Defaults()), nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadPortfolio reads the content file, or returns the built-in content when path is empty.
func loadPortfolio(path string) (*types.Portfolio, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

func loadCards(templateDir string) (*rendering.Cards, error) {
	if templateDir == "" {
		return rendering.NewCards()
	}
	return rendering.NewCardsFromDir(templateDir)
}

// submissionStore is implemented by both database backends.
type submissionStore interface {
	contact.Store
	ListSubmissions(ctx context.Context, limit int) ([]types.StoredSubmission, error)
}

// openStore connects the configured backend: database_url wins over sqlite_path.
// It returns a nil store when neither is set.
func openStore(ctx context.Context, cfg config.Config) (submissionStore, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return pg, pg.Close, nil

	case cfg.SQLitePath != "":
		lite, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return lite, func() { _ = lite.Close() }, nil

	default:
		return nil, func() {}, nil
	}
}

func newNotifier(cfg config.Config, logger *slog.Logger) contact.Notifier {
	if cfg.SMTP.Host == "" {
		return contact.LogNotifier{Logger: logger}
	}
	return &contact.SMTPNotifier{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		To:       cfg.SMTP.To,
	}
}

// newContactService wires store, notifier and IP hashing into the acceptor used by the server.
func newContactService(cfg config.Config, store submissionStore, logger *slog.Logger) (*contact.Service, error) {
	hasher, err := contact.NewIPHasher([]byte(cfg.IPHashKey))
	if err != nil {
		return nil, fmt.Errorf("invalid ip hash key: %w", err)
	}

	return contact.NewService(store, newNotifier(cfg, logger), hasher, logger), nil
}
