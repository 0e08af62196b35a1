package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirulhakim/spicebite-backend/api/middleware"
	"github.com/amirulhakim/spicebite-backend/api/routes"
	"github.com/amirulhakim/spicebite-backend/internal/cart"
	"github.com/amirulhakim/spicebite-backend/internal/catalog"
	"github.com/amirulhakim/spicebite-backend/internal/chatbot"
	checkoutsvc "github.com/amirulhakim/spicebite-backend/internal/checkout"
	"github.com/amirulhakim/spicebite-backend/internal/notifications"
	"github.com/amirulhakim/spicebite-backend/internal/orders"
	"github.com/amirulhakim/spicebite-backend/internal/profiles"
	subscriptionsvc "github.com/amirulhakim/spicebite-backend/internal/subscriptions"
	"github.com/amirulhakim/spicebite-backend/pkg/config"
	"github.com/amirulhakim/spicebite-backend/pkg/db"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
	"github.com/amirulhakim/spicebite-backend/pkg/metrics"
	"github.com/amirulhakim/spicebite-backend/pkg/migrate"
	"github.com/amirulhakim/spicebite-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	orderMetrics := metrics.NewOrderMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(dbClient.DB())
	ordersService, err := orders.NewService(ordersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	profilesRepo := profiles.NewRepository(dbClient.DB())
	profilesService, err := profiles.NewService(profilesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create profiles service", err)
		os.Exit(1)
	}

	subscriptionsService, err := subscriptionsvc.NewService(subscriptionsvc.NewRepository(dbClient.DB()), profilesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create subscriptions service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(
		catalogRepo,
		ordersRepo,
		middleware.ContextIdentity{},
		notifications.NewLogSink(logg),
		orderMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DB:            dbClient,
			Redis:         redisClient,
			Registry:      registry,
			CartStore:     cart.NewStore(),
			Catalog:       catalogService,
			Checkout:      checkoutService,
			Orders:        ordersService,
			Chatbot:       chatbot.NewService(),
			Profiles:      profilesService,
			Subscriptions: subscriptionsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
