package app

import (
	"context"

	"go.uber.org/zap"

	libredis "eyewave/backend/libs/redis"
	"eyewave/backend/services/report-service/internal/auth"
	"eyewave/backend/services/report-service/internal/cache"
	"eyewave/backend/services/report-service/internal/config"
	httpserver "eyewave/backend/services/report-service/internal/http"
	"eyewave/backend/services/report-service/internal/http/handlers"
	"eyewave/backend/services/report-service/internal/http/middleware"
	"eyewave/backend/services/report-service/internal/platform"
	"eyewave/backend/services/report-service/internal/service"
	"eyewave/backend/services/report-service/internal/session"
)

// App wires report service dependencies.
type App struct {
	server *httpserver.Server
	logger *zap.Logger
	close  func()
}

// New constructs application graph. Redis is optional: without an addr the
// session store falls back to process memory and sample caching is disabled.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	var sessions session.Store
	var samples *cache.SamplesCache
	closeFn := func() {}

	if cfg.Redis.Addr != "" {
		redisClient, err := libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL())
		samples = cache.NewSamplesCache(redisClient, cfg.SamplesTTL())
		closeFn = func() { _ = redisClient.Close() }
	} else {
		logger.Warn("redis addr not configured, using in-memory sessions and no samples cache")
		sessions = session.NewMemoryStore(cfg.SessionTTL())
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWTTTL())

	platformClient := platform.NewClient(
		cfg.Platform.BaseURL,
		platform.NewDefaultHTTPClient(cfg.PlatformTimeout()),
		logger,
	)

	reports := service.NewReportService(platformClient, sessions, samples, tokens, service.DefaultSeriesStyles(), logger)

	authHandlers := handlers.NewAuthHandlers(reports, logger)
	membersHandlers := handlers.NewMembersHandlers(reports, logger)
	statisticsHandlers := handlers.NewStatisticsHandlers(reports, logger)
	seriesHandlers := handlers.NewSeriesHandlers(reports, cfg.DefaultBucketSize(), logger)
	exportHandlers := handlers.NewExportHandlers(reports, logger)
	chartSocketHandler := handlers.NewChartSocketHandler(reports, cfg.DefaultBucketSize(), logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		AuthHandlers:       authHandlers,
		MembersHandlers:    membersHandlers,
		StatisticsHandlers: statisticsHandlers,
		SeriesHandlers:     seriesHandlers,
		ExportHandlers:     exportHandlers,
		ChartSocketHandler: chartSocketHandler,
		HealthHandler:      handlers.Health,
	}, middleware.SessionMiddleware(tokens, sessions))

	server := httpserver.NewServer(
		cfg.HTTPAddress(),
		router,
		logger,
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	)

	return &App{
		server: server,
		logger: logger,
		close:  closeFn,
	}, nil
}

// Run starts serving HTTP traffic.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	a.close()
}
