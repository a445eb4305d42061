package main

import (
	"context"
	"os"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/external/resend"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/external/stripe"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/config"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/db"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/repository"
	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal(err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	mailer, err := resend.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	if err != nil {
		logger.Fatal(err)
	}
	stripeClient := stripe.NewClient(cfg.StripeSecretKey)

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, resetRepo, mailer, cfg.ResetBaseURL, logger)
	categorySvc := services.NewCategoryService(categoryRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo)
	paymentSvc := services.NewPaymentService(stripeClient, cfg.StripeCurrency)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, logger)
	registerProfileRoutes(api, authSvc, logger)
	registerCategoryRoutes(api, categorySvc, logger)
	registerProductRoutes(api, productSvc, logger)
	registerCartRoutes(api, cartSvc, logger)
	registerOrderRoutes(api, orderSvc, cartSvc, logger)
	registerPaymentRoutes(api, paymentSvc, logger)

	// ======================
	// SERVER
	// ======================
	logger.Infof("listening on :%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
