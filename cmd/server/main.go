package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	authhandler "talentmap/internal/auth/handler"
	authservice "talentmap/internal/auth/service"
	authstore "talentmap/internal/auth/store"
	"talentmap/internal/mapview"
	maphandler "talentmap/internal/mapview/handler"
	"talentmap/internal/platform/config"
	"talentmap/internal/platform/httpserver"
	"talentmap/internal/platform/logger"
	"talentmap/internal/platform/metrics"
	"talentmap/internal/platform/mongo"
	"talentmap/internal/platform/redis"
	profilehandler "talentmap/internal/profile/handler"
	profileservice "talentmap/internal/profile/service"
	profilestore "talentmap/internal/profile/store"
	httptransport "talentmap/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Business rules live
// in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.New(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Error("mongo connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Close(closeCtx)
	}()

	users := authstore.NewMongoStore(mongoClient.Database())
	profiles := profilestore.NewMongoStore(mongoClient.Database())
	for _, ensure := range []func(context.Context) error{users.EnsureIndexes, profiles.EnsureIndexes} {
		if err := ensure(connectCtx); err != nil {
			log.Error("index creation failed", "error", err)
			os.Exit(1)
		}
	}

	// Redis is optional. Without it the map view recomputes on every request.
	redisClient, err := redis.New(connectCtx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	var mapCache *mapview.Cache
	if redisClient != nil {
		mapCache = mapview.NewCache(redisClient.Client, cfg.MapCacheTTL)
		defer redisClient.Close()
	}

	m := metrics.New()
	tokens := authservice.NewTokenManager(cfg.JWTSigningKey, cfg.TokenTTL)

	authSvc := authservice.NewService(users, tokens)
	profileSvc := profileservice.NewService(profiles)
	mapSvc := mapview.NewService(profiles, mapCache, log)

	checks := []httptransport.HealthCheck{
		{Name: "mongo", Check: mongoClient.Health},
	}
	if redisClient != nil {
		checks = append(checks, httptransport.HealthCheck{Name: "redis", Check: redisClient.Health})
	}

	router := httptransport.NewRouter(log, m, tokens, checks,
		authhandler.New(authSvc, log, m),
		profilehandler.New(profileSvc, log, m),
		maphandler.New(mapSvc, log, m),
	)

	srv := httpserver.New(cfg.Addr, router)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := httpserver.New(cfg.MetricsAddr, metricsMux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("metrics listening", "addr", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
