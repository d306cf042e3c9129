package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/telco_churn/backend/internal/config"
	"github.com/telco_churn/backend/internal/contract"
	httpapi "github.com/telco_churn/backend/internal/http"
	"github.com/telco_churn/backend/internal/inference"
	"github.com/telco_churn/backend/internal/service"
)

// @title Telco Churn Prediction API
// @version 1.0
// @description Predict churn for one customer record
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	if cfg.Env == "release" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	artifact, err := inference.Load(ctx, inference.Options{
		Path:    cfg.ModelPath,
		URL:     cfg.ModelURL,
		Timeout: cfg.ModelTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load model artifact")
	}
	if err := contract.CheckColumns(artifact.Features()); err != nil {
		logger.Fatal().Err(err).Str("model", artifact.Name()).Msg("model schema does not match input contract")
	}
	logger.Info().Str("model", artifact.Name()).Int("features", len(artifact.Features())).Msg("model artifact loaded")

	router, err := httpapi.Router(cfg, service.NewPredictor(artifact), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}

func newLogger(cfg config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = zerolog.MultiLevelWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "churn-api").Logger()
}
