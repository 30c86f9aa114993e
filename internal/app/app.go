package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"house_fund/internal/config"
	"house_fund/internal/logger"
	"house_fund/internal/monitoring"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	s.initServiceProvider()

	if lerr := logger.Init(s.ServiceProvider.LogCfg().Level()); lerr != nil {
		return lerr
	}
	defer func() { _ = logger.Log.Sync() }()
	if err != nil {
		logger.Log.Info("Error loading .env file", zap.Error(err))
	}
	monitoring.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)
	go s.ServiceProvider.EventHub().Run(ctx)
	s.ServiceProvider.AssetService().Prefetch(ctx)

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Log.Info("starting server", zap.String("address", srv.Addr))
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
