package leaflog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/leaflog/internal/cache"
	"github.com/magabrotheeeer/leaflog/internal/config"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/metrics"
	"github.com/magabrotheeeer/leaflog/internal/services/admin"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
	"github.com/magabrotheeeer/leaflog/internal/storage/memory"
)

// Cache кеш приложения: redis или заглушка, если redis не настроен.
type Cache interface {
	garden.Cache
	Close() error
}

type App struct {
	server *http.Server
	logger *slog.Logger
	cache  Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var c Cache = cache.Noop{}
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		c = cacheRedis
	} else {
		logger.Info("redis address is empty, cache disabled")
	}

	router, err := newRouter(ctx, cfg, logger, c)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  c,
	}, nil
}

// newRouter создает хранилище, сервисы и метрики и регистрирует на них маршруты.
func newRouter(ctx context.Context, cfg *config.Config, logger *slog.Logger, c Cache) (http.Handler, error) {
	store := memory.New()
	if !cfg.DisableSeed {
		store.Seed(memory.DefaultFixtures())
	}

	m := metrics.New()
	plants, err := store.ListPlants(ctx)
	if err != nil {
		return nil, err
	}
	m.SetPlants(len(plants))

	// Хранилище живёт в памяти процесса, а redis переживает рестарт:
	// ключи каждого запуска изолированы своим префиксом.
	prefix := uuid.NewString() + ":"
	logger.Debug("cache key prefix", slog.String("prefix", prefix))

	gardenService := garden.NewService(store, c, m, logger, cfg.CacheTTL, garden.WithKeyPrefix(prefix))
	adminService := admin.NewService(store, c, logger, cfg.CacheTTL, admin.WithKeyPrefix(prefix))

	router := chi.NewRouter()
	RegisterRoutes(router, logger, gardenService, adminService, m, cfg.RateLimit)
	return router, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeCache()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeCache()
		return err
	}
}

func (a *App) closeCache() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
}
