package main

import (
	"Studenten/internal/config"
	"Studenten/internal/handlers"
	"Studenten/internal/middleware"
	"Studenten/internal/repo"
	"Studenten/internal/seed"
	"Studenten/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// zap: development-вывод или JSON по LOG_FORMAT
	zl, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := zl.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := zl.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, sugar.Named("gorm"))
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if cfg.LogLevel == "debug" {
		gormDB.Logger = gormDB.Logger.LogMode(logger.Info)
	}

	studentRepo := repo.NewStudentRepository(gormDB)
	fileRepo := repo.NewFileRepository(gormDB)
	readService := service.NewReadService(studentRepo, fileRepo, sugar.Named("read"))
	writeService := service.NewWriteService(studentRepo, fileRepo, sugar.Named("write"))

	if cfg.DBPopulate {
		doc, err := seed.Load(cfg.SeedFile)
		if err != nil {
			sugar.Fatalw("failed to load seed file", "file", cfg.SeedFile, "error", err)
		}
		if _, err := seed.Populate(ctx, writeService, doc, sugar.Named("seed")); err != nil {
			sugar.Fatalw("failed to populate database", "error", err)
		}
	}

	h := handlers.NewHandler(readService, writeService, sugar.Named("http"), cfg)

	addr := cfg.BaseURL
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
		"LogLevel", cfg.LogLevel,
		"DBPopulate", cfg.DBPopulate,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
