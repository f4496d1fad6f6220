package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/tj-hand/echoes/handler"
	"github.com/tj-hand/echoes/middlewares"
	"github.com/tj-hand/echoes/pkg/health"
	"github.com/tj-hand/echoes/pkg/i18n"
	"github.com/tj-hand/echoes/pkg/logger"
)

const appSource = "app"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	svc, err := buildService(cfg, log)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      buildRouter(cfg, log, svc),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.String("default_locale", svc.DefaultLocale()),
		)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("shutdown completed")
	return nil
}

func buildService(cfg Config, log *slog.Logger) (*i18n.Service, error) {
	store := i18n.NewStore(i18n.WithStoreLogger(log))

	if cfg.TranslationsDir != "" {
		if err := store.RegisterSource(appSource, i18n.WithPath(cfg.TranslationsDir)); err != nil {
			return nil, fmt.Errorf("register translations dir: %w", err)
		}
		log.Info("translations loaded",
			slog.String("dir", cfg.TranslationsDir),
			slog.Any("locales", store.Locales()),
		)
	}

	return i18n.New(store,
		i18n.WithDefaultLocale(cfg.DefaultLocale),
		i18n.WithLogger(log),
	)
}

func buildRouter(cfg Config, log *slog.Logger, svc *i18n.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(log))
	r.Use(middlewares.CORS(middlewares.WithCORSOrigins(cfg.CORSOrigins...)))
	r.Use(middlewares.Locale(svc))

	r.Route("/api/echoes", handler.New(svc, handler.WithLogger(log)).Routes)

	r.Get("/health/live", health.LivenessHandler(health.WithService("echoes", version)))
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"translations": translationsCheck(svc),
	}, health.WithLogger(log), health.WithService("echoes", version)))

	return r
}

// translationsCheck reports unhealthy when the default locale has no
// translations loaded while a bundle directory is configured.
func translationsCheck(svc *i18n.Service) health.CheckFunc {
	return func(ctx context.Context) error {
		if len(svc.Store().SourceNames()) == 0 {
			// Nothing registered: inline-only deployments are still fine.
			return nil
		}
		if len(svc.Store().MergedTranslations(svc.DefaultLocale())) == 0 {
			return fmt.Errorf("no translations for default locale %q", svc.DefaultLocale())
		}
		return nil
	}
}
