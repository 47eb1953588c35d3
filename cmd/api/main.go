package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"connecthub/internal/config"
	"connecthub/internal/database"
	"connecthub/internal/middleware"
	"connecthub/internal/modules/admin"
	"connecthub/internal/modules/auth"
	"connecthub/internal/modules/category"
	"connecthub/internal/modules/events"
	"connecthub/internal/modules/job"
	"connecthub/internal/modules/listing"
	"connecthub/internal/modules/message"
	"connecthub/internal/modules/order"
	"connecthub/internal/modules/payment"
	"connecthub/internal/modules/review"
	"connecthub/internal/modules/subscription"
	"connecthub/internal/modules/upload"
	"connecthub/internal/modules/user"
	jwtsvc "connecthub/internal/pkg/jwt"
	"connecthub/internal/pkg/ratelimit"
	"connecthub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	listingRepo := repository.NewListingRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	jobRepo := repository.NewJobRepository(db)
	savedJobRepo := repository.NewSavedJobRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AdminSessionTTL)
	hub := events.NewHub()
	defer hub.Close()

	gateway := payment.NewGateway(cfg.GatewayKeyID, cfg.GatewayKeySecret)

	authService := auth.NewService(
		userRepo, j, auth.NewDevConsoleSender(cfg.AppEnv != "prod"),
		cfg.OTPPepper, cfg.OTPCodeTTL, cfg.OTPResendCooldown, cfg.ResetTokenTTL,
	)
	authHandler := auth.NewHandler(authService, cfg.AdminSessionTTL, cfg.CookieSecure)

	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo, listingRepo, hub))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo))
	jobHandler := job.NewHandler(job.NewService(jobRepo, savedJobRepo))
	messageHandler := message.NewHandler(message.NewService(messageRepo))
	subscriptionHandler := subscription.NewHandler(subscription.NewService(subscriptionRepo, paymentRepo, gateway, hub))
	uploadHandler := upload.NewHandler(upload.NewService(cfg.UploadDir, cfg.UploadBaseURL))
	userHandler := user.NewHandler(user.NewService(userRepo, hub))
	adminHandler := admin.NewHandler(admin.NewService(db, userRepo, orderRepo, payoutRepo))
	eventsHandler := events.NewHandler(hub, j)

	loginLimiter := ratelimit.NewLimiter(cfg.LoginBurst, 1, time.Minute)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.Static("/static", cfg.UploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		eventsHandler.RegisterRoutes(api)

		authed := api.Group("/")
		authed.Use(middleware.AuthRequired(j))

		vendor := api.Group("/vendor")
		vendor.Use(middleware.AuthRequired(j), middleware.VendorOnly())

		adminGroup := api.Group("/admin")
		authHandler.RegisterAdminLogin(adminGroup, middleware.RateLimitByIP(loginLimiter))
		adminGroup.Use(middleware.AdminAuthRequired(j))

		categoryHandler.RegisterRoutes(api, adminGroup)
		listingHandler.RegisterRoutes(api, vendor)
		orderHandler.RegisterRoutes(authed, adminGroup)
		reviewHandler.RegisterRoutes(api, authed, adminGroup)
		jobHandler.RegisterRoutes(api, authed)
		messageHandler.RegisterRoutes(api, adminGroup)
		subscriptionHandler.RegisterRoutes(api, vendor)
		uploadHandler.RegisterRoutes(authed)
		userHandler.RegisterRoutes(authed)
		adminHandler.RegisterRoutes(adminGroup)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("api: listening addr=%s env=%s", addr, cfg.AppEnv)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
