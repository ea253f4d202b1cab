package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/config"
	"github.com/Skotchmaster/boutiquechat/internal/events"
	"github.com/Skotchmaster/boutiquechat/internal/httpserver"
	"github.com/Skotchmaster/boutiquechat/internal/repo"
	"github.com/Skotchmaster/boutiquechat/internal/search"
	"github.com/Skotchmaster/boutiquechat/internal/service"
	"github.com/Skotchmaster/boutiquechat/internal/upload"
	pkgdb "github.com/Skotchmaster/boutiquechat/pkg/db"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
	"github.com/Skotchmaster/boutiquechat/pkg/middleware/csrf"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed the admin account, then exit",
	RunE:  runMigrate,
}

// bootstrap loads configuration, opens the database and migrates it.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *gorm.DB, *repo.GormRepo, error) {
	envErr := config.LoadEnvFile(envFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Warn("env_file_not_loaded", "path", envFile, "error", envErr)
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := pkgdb.Open(openCtx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("db open: %w", err)
	}

	r := &repo.GormRepo{DB: db}
	if err := r.Migrate(openCtx); err != nil {
		_ = pkgdb.Close(db)
		return nil, nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, logger, db, r, nil
}

func seedAdmin(ctx context.Context, cfg *config.Config, auth *service.AuthService, logger *slog.Logger) error {
	if cfg.AdminUsername == "" {
		logger.Warn("admin_seed_skipped", "reason", "ADMIN_USERNAME is empty")
		return nil
	}
	return auth.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, logger, db, r, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer pkgdb.Close(db)

	ctx = logging.IntoContext(ctx, logger)
	auth := &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, AccessTTL: cfg.AccessTTL}
	if err := seedAdmin(ctx, cfg, auth, logger); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("migrate_done")
	return nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("events_disabled", "reason", "KAFKA_BROKERS is empty")
		return events.Nop{}
	}
	p, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logger.Error("kafka_init_failed", "error", err)
		return events.Nop{}
	}
	return p
}

func newSearcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) service.ProductSearcher {
	if cfg.ESURL == "" {
		logger.Info("search_disabled", "reason", "ES_URL is empty")
		return nil
	}
	es, err := search.NewClient(ctx, search.Config{URL: cfg.ESURL, Username: cfg.ESUser, Password: cfg.ESPassword})
	if err != nil {
		logger.Error("search_init_failed", "error", err)
		return nil
	}
	return search.NewProductIndex(es, cfg.ESIndex)
}

func newUploader(cfg *config.Config, keys upload.KeySource, logger *slog.Logger) (upload.Uploader, error) {
	if cfg.CloudinaryURL != "" {
		logger.Info("uploads_via_cloudinary", "folder", cfg.CloudinaryFolder)
		return upload.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	}
	return upload.NewImgBB(cfg.ImgBBEndpoint, keys), nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, db, r, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer pkgdb.Close(db)
	ctx = logging.IntoContext(ctx, logger)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}

	pub := newPublisher(cfg, logger)
	defer pub.Close()

	catalog := &service.CatalogService{Repo: r, Events: pub, Search: newSearcher(ctx, cfg, logger)}
	settings := &service.SettingsService{Repo: r, Events: pub}
	auth := &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, AccessTTL: cfg.AccessTTL}

	if err := seedAdmin(ctx, cfg, auth, logger); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	up, err := newUploader(cfg, settings, logger)
	if err != nil {
		return err
	}

	csrfCfg := csrf.DefaultConfig()
	csrfCfg.Secure = cfg.CookieSecure

	e := httpserver.New(logger, &httpserver.Deps{
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalog, Settings: settings},
		SettingsHandler: &httpserver.SettingsHTTP{Svc: settings},
		AuthHandler:     &httpserver.AuthHTTP{Svc: auth},
		UploadHandler:   &httpserver.UploadHTTP{Uploader: up, MaxBytes: int64(cfg.MaxUploadBytes)},
		Auth:            auth,
		CSRF:            csrfCfg,
		DB:              sqlDB,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", "error", err)
	}

	logger.Info("http_stopped")
	return nil
}
