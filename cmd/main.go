package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/config"
	"github.com/k-abishek/online-shopping/internal/clients"
	"github.com/k-abishek/online-shopping/internal/delivery"
	"github.com/k-abishek/online-shopping/internal/domain"
	"github.com/k-abishek/online-shopping/internal/middleware"
	"github.com/k-abishek/online-shopping/internal/session"
	"github.com/k-abishek/online-shopping/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting storefront gateway...")
	logger.Infof("Backend target: %s", cfg.BackendURL)

	productAPI := clients.NewProductClient(cfg.BackendURL, cfg.RequestTimeout, logger)
	categoryAPI := clients.NewCategoryClient(cfg.BackendURL, cfg.RequestTimeout, logger)
	dashboardAPI := clients.NewDashboardClient(cfg.BackendURL, cfg.RequestTimeout, logger)

	store, err := session.NewFileStore(cfg.SessionFile)
	if err != nil {
		logger.Fatalf("FATAL: Failed to open session store at %s: %v", cfg.SessionFile, err)
	}
	sessions := session.NewManager(store, logger)

	authenticator, err := usecase.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to build authenticator: %v", err)
	}

	authUC := usecase.NewAuthUseCase(authenticator, sessions, logger)
	catalogUC := usecase.NewCatalogUseCase(productAPI, logger)
	cartUC := usecase.NewCartUseCase(cfg.AddToCartDelay, logger)
	adminUC := usecase.NewAdminUseCase(productAPI, categoryAPI, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	delivery.NewAuthHandler(authUC, cartUC, adminUC, logger).RegisterRoutes(router)

	userViews := router.Group("/")
	userViews.Use(middleware.RequireRole(sessions, domain.RoleUser, logger))
	delivery.NewShopHandler(catalogUC, cartUC, logger).RegisterRoutes(userViews)

	adminViews := router.Group("/")
	adminViews.Use(middleware.RequireRole(sessions, domain.RoleAdmin, logger))
	delivery.NewAdminHandler(adminUC, logger).RegisterRoutes(adminViews)
	delivery.NewDashboardHandler(dashboardAPI, logger).RegisterRoutes(adminViews)

	logger.Infof("Storefront gateway listening on port %s", cfg.GatewayPort)
	if err := router.Run(cfg.GatewayPort); err != nil {
		logger.Errorf("Failed to start storefront gateway: %v", err)
		os.Exit(1)
	}
}
