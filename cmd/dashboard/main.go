package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"proxima-dashboard/internal/config"
	"proxima-dashboard/internal/service/access"
	generate_excel "proxima-dashboard/internal/service/generate-excel"
	"proxima-dashboard/internal/service/schedule"
	"proxima-dashboard/internal/service/statistics"
	"proxima-dashboard/internal/storage/mysql"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(context.Background()); err != nil {
		log.Error("failed to migrate db", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.AdminPassword == "" {
		log.Warn("admin_password is not set, only the bypass code unlocks log changes")
	}

	statsService := statistics.NewService(storage)
	excelService := generate_excel.NewGenerateService(statsService)
	scheduleService := schedule.NewService(storage)
	gate := access.NewGate(cfg.AdminPassword, cfg.BypassCode)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, statsService, excelService, scheduleService, gate),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	// everything goes to stdout
	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	// errors are also kept in the file
	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		slog.Warn("Cannot open error log file", "error", err)
		return slog.New(newCoreHandler(env, os.Stdout))
	}

	return newLogger(env, os.Stdout, errorFile)
}

func newCoreHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	switch env {
	case envDev:
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}
}

func newLogger(env string, out, errOut io.Writer) *slog.Logger {
	errorHandler := slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  newCoreHandler(env, out),
		errorHandler: errorHandler,
	})
}
