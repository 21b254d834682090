package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-be/internal/client"
	"crm-be/internal/config"
	"crm-be/internal/db"
	"crm-be/internal/graph"
	"crm-be/internal/logger"
	"crm-be/internal/metrics"
	"crm-be/internal/middleware"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/report"
	"crm-be/internal/tracing"
	"crm-be/internal/user"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	shutdownTimeout  = 10 * time.Second
	limiterSweep     = time.Minute
	redisDialTimeout = 2 * time.Second
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, shutdownTracing, err := tracing.InitTracing(ctx, tracing.Config{Endpoint: cfg.OTLPEndpoint})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.L().Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	database := initDBFunc(cfg)
	defer database.Close()

	rdb := newRedis(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(ctx, cfg, database, rdb),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("GraphQL server running", zap.String("addr", "http://localhost:"+cfg.AppPort+"/"))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRedis returns nil when no address is configured. An unreachable server
// is only logged: reports fall back to the database per request.
func newRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.L().Warn("redis unreachable, reports will not be cached",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
	}
	return rdb
}

func newServer(ctx context.Context, cfg *config.Config, database *sql.DB, rdb *redis.Client) http.Handler {
	userRepo := user.NewRepository(database)
	productRepo := product.NewRepository(database)
	clientRepo := client.NewRepository(database)
	orderRepo := order.NewRepository(database)

	cache := report.NewNoopCache()
	if rdb != nil {
		cache = report.NewRedisCache(rdb, cfg.ReportCacheTTL)
	}
	reportSvc := report.NewService(report.NewRepository(database), cache)

	orderMetrics := metrics.NewOrderMetrics()

	resolver := &graph.Resolver{
		UserSvc:    user.NewService(userRepo),
		ProductSvc: product.NewService(productRepo),
		ClientSvc:  client.NewService(clientRepo, reportSvc),
		OrderSvc: order.NewService(
			orderRepo,
			clientRepo,
			productRepo,
			db.NewTransactor(database),
			reportSvc,
			orderMetrics,
		),
		ReportSvc: reportSvc,
	}

	srv := handler.NewDefaultServer(graph.NewSchema(resolver))
	srv.SetErrorPresenter(graph.ErrorPresenter)

	limiter := middleware.NewRateLimiter(cfg.InternalKey)
	go limiter.Run(ctx, limiterSweep)

	// auth runs first so the limiter can key on the seller
	api := middleware.AuthMiddleware(limiter.Middleware(middleware.HTTPContext(srv)))

	router := setupRouter(api, orderMetrics)
	router.Use(
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		tracing.Middleware,
		middleware.CORS(cfg.CORSOrigin),
	)
	return router
}

func setupRouter(api http.Handler, m *metrics.OrderMetrics) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/", playground.Handler("GraphQL Playground", "/query")).Methods(http.MethodGet)
	r.Handle("/query", api)
	r.HandleFunc("/health", healthHandler(m)).Methods(http.MethodGet)

	return r
}

func healthHandler(m *metrics.OrderMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"orders": m.Snapshot(),
		})
	}
}
