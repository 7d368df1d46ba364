package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"promptatlas/internal/config"
	"promptatlas/internal/dataset"
	"promptatlas/internal/http/handlers"
	"promptatlas/internal/platform/logger"
	"promptatlas/internal/promptgen"
	"promptatlas/internal/server"
)

// App owns the serve-mode wiring: config, logger, dataset store, router.
type App struct {
	Log    *logger.Logger
	Config *config.Config

	server *http.Server
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	switch cfg.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	}

	store := dataset.Load(cfg.DataPath, log)
	gen := promptgen.New()

	router := server.NewRouter(server.RouterConfig{
		Log:           log,
		AllowOrigins:  cfg.HTTP.AllowOrigins,
		HealthHandler: handlers.NewHealthHandler(),
		StatsHandler:  handlers.NewStatsHandler(log, store),
		BrowseHandler: handlers.NewBrowseHandler(log, store),
		LoraHandler:   handlers.NewLoraHandler(log, store),
		PromptHandler: handlers.NewPromptHandler(log, gen),
	})

	return &App{
		Log:    log,
		Config: cfg,
		server: server.NewHTTPServer(cfg, router),
	}, nil
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("server listening", "addr", a.Config.HTTP.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), a.Config.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
