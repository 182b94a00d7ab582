package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acclivity-be/internal/address"
	"acclivity-be/internal/cart"
	"acclivity-be/internal/config"
	"acclivity-be/internal/db"
	"acclivity-be/internal/earnings"
	"acclivity-be/internal/favorites"
	"acclivity-be/internal/feedback"
	"acclivity-be/internal/logger"
	"acclivity-be/internal/metrics"
	"acclivity-be/internal/middleware"
	"acclivity-be/internal/notification"
	"acclivity-be/internal/order"
	"acclivity-be/internal/product"
	"acclivity-be/internal/settings"
	"acclivity-be/internal/user"
	"acclivity-be/internal/utils"
	"acclivity-be/internal/verification"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	settingsRepo := settings.NewRepository(database)
	settingsSvc := settings.NewService(settingsRepo, cfg.DefaultPointsPerPeso)

	earningsRepo := earnings.NewRepository(database)
	earningsSvc := earnings.NewService(earningsRepo, settingsSvc)

	verificationRepo := verification.NewRepository(database)
	verificationSvc := verification.NewService(verificationRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, verificationRepo, earningsSvc)

	feedbackRepo := feedback.NewRepository(database)
	feedbackSvc := feedback.NewService(feedbackRepo, earningsSvc)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	favoritesRepo := favorites.NewRepository(database)
	favoritesSvc := favorites.NewService(favoritesRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	notificationRepo := notification.NewRepository(database)
	notificationSvc := notification.NewService(notificationRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	r := mux.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimitMiddleware)
	api.Use(middleware.AuthMiddleware)

	settings.NewHandler(settingsSvc).Register(api.PathPrefix("/settings").Subrouter())
	earnings.NewHandler(earningsSvc).Register(api.PathPrefix("/earnings").Subrouter())
	order.NewHandler(orderSvc).Register(api.PathPrefix("/orders").Subrouter())
	feedback.NewHandler(feedbackSvc).Register(api.PathPrefix("/ratings").Subrouter())
	product.NewHandler(productSvc).Register(api.PathPrefix("/products").Subrouter())
	cart.NewHandler(cartSvc).Register(api.PathPrefix("/cart").Subrouter())
	favorites.NewHandler(favoritesSvc).Register(api.PathPrefix("/favorites").Subrouter())
	address.NewHandler(addressSvc).Register(api.PathPrefix("/delivery-address").Subrouter())
	notification.NewHandler(notificationSvc).Register(api.PathPrefix("/notifications").Subrouter())
	user.NewHandler(userSvc).Register(api.PathPrefix("/auth").Subrouter())
	verification.NewHandler(verificationSvc).Register(api)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L().Info("server started", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
