package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BabyNest/config"
	"BabyNest/controllers"
	"BabyNest/logger"
	"BabyNest/middlewares"
	"BabyNest/repositories/impl"
	"BabyNest/response"
	"BabyNest/routes"
	"BabyNest/services"
	"BabyNest/websocket"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "babynest")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Clients
	db, err := config.InitDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	rdb, err := config.InitRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	var (
		fcm        *messaging.Client
		authClient *auth.Client
	)
	app, err := config.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		return err
	}
	if app != nil {
		if fcm, err = app.Messaging(ctx); err != nil {
			return err
		}
		if authClient, err = app.Auth(ctx); err != nil {
			return err
		}
	} else {
		log.Warn("firebase credentials not set, push and Google sign-in disabled")
	}

	mailer, err := config.InitMailer(ctx, cfg.Mail, log)
	if err != nil {
		return err
	}
	storage, closeStorage, err := config.InitStorage(ctx, cfg.GCSBucket, cfg.GCSCredentialsPath)
	if err != nil {
		return err
	}
	defer closeStorage()

	// Repositories
	accountRepo := impl.NewAccountRepository(db)
	parentRepo := impl.NewParentRepository(db)
	childRepo := impl.NewChildRepository(db)
	relationRepo := impl.NewRelationRepository(db)
	activityRepo := impl.NewActivityRepository(db)
	feedRepo := impl.NewFeedRepository(db)
	milestoneRepo := impl.NewMilestoneRepository(db)
	vaccinationRepo := impl.NewVaccinationRepository(db)
	categoryRepo := impl.NewCategoryRepository(db)
	productRepo := impl.NewProductRepository(db)
	musicRepo := impl.NewMusicRepository(db)
	cartRepo := impl.NewCartRepository(db)
	orderRepo := impl.NewOrderRepository(db)
	favoriteRepo := impl.NewFavoriteRepository(db)
	purchaseRepo := impl.NewPurchaseRepository(db)
	chatRepo := impl.NewChatRepository(db)
	messageRepo := impl.NewMessageRepository(db)
	statsRepo := impl.NewStatsRepository(db)
	tipRepo := impl.NewTipRepository(db)
	vendorRepo := impl.NewVendorRepository(db)
	queryRepo := impl.NewQueryRepository(db)

	// Services
	clock := services.NewClock(cfg.Location)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	email := services.NewEmailService(mailer, log)
	uploads := services.NewUploadService(storage)
	messageService := services.NewMessageService(messageRepo, accountRepo, services.NewPushService(fcm, log), log)
	authService := services.NewAuthService(accountRepo, parentRepo, tokens, email, messageService,
		services.NewFirebaseVerifier(authClient), cfg.OTPTTL, log)
	parentService := services.NewParentService(parentRepo, accountRepo, relationRepo)
	tipService := services.NewTipService(tipRepo, log)
	childService := services.NewChildService(parentRepo, childRepo, relationRepo, tipService, clock, log)
	growthService := services.NewGrowthService(childRepo)
	activityService := services.NewActivityService(activityRepo, feedRepo, clock, log)
	feedService := services.NewFeedService(feedRepo, clock)
	dashboardService := services.NewDashboardService(childRepo, activityRepo, feedRepo, milestoneRepo, vaccinationRepo, clock)
	milestoneService := services.NewMilestoneService(milestoneRepo, clock)
	vaccinationService := services.NewVaccinationService(vaccinationRepo, uploads)
	relationService := services.NewRelationService(relationRepo, parentRepo, email, clock, log)
	categoryService := services.NewCategoryService(categoryRepo, clock)
	productService := services.NewProductService(productRepo, categoryRepo, uploads)
	musicService := services.NewMusicService(musicRepo, categoryRepo, uploads)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, messageService, clock, log)
	favoriteService := services.NewFavoriteService(favoriteRepo, productRepo, musicRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo, musicRepo, clock)
	chatService := services.NewChatService(chatRepo, accountRepo, uploads, services.NewRedisPublisher(rdb), log)
	adminService := services.NewAdminService(statsRepo, vendorRepo, accountRepo, categoryRepo, milestoneRepo, vaccinationRepo, orderRepo, email, clock, log)
	invitationService := services.NewInvitationService(parentRepo, childRepo, email, authService, cfg.InviteURL, log)
	supportService := services.NewSupportService(queryRepo, parentRepo)

	// Live chat
	hub := websocket.NewHub(log)
	go hub.Run(ctx)
	go func() {
		if err := hub.Listen(ctx, rdb); err != nil {
			log.Error("chat subscription stopped", zap.Error(err))
		}
	}()

	// HTTP
	response.UseJSONFieldNames()
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORS(cfg.CORSOrigins))

	secureCookie := os.Getenv("GIN_MODE") == gin.ReleaseMode
	routes.RegisterRoutes(r, middlewares.NewAuthMiddleware(tokens), childService, routes.Controllers{
		Auth:     controllers.NewAuthController(authService, tokens.TTL(), secureCookie, log),
		Parent:   controllers.NewParentController(parentService, log),
		Child:    controllers.NewChildController(childService, growthService, dashboardService, log),
		Activity: controllers.NewActivityController(activityService, feedService, cfg.Location, log),
		Care:     controllers.NewCareController(milestoneService, vaccinationService, relationService, log),
		Catalog:  controllers.NewCatalogController(categoryService, productService, musicService, log),
		Shop:     controllers.NewShopController(parentService, cartService, orderService, favoriteService, purchaseService, log),
		Chat:     controllers.NewChatController(chatService, messageService, uploads, hub, log),
		Admin:    controllers.NewAdminController(adminService, orderService, log),
		Support:  controllers.NewSupportController(invitationService, supportService, log),
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}
