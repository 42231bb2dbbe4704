package main

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campuseats/campuseats/config"
	"github.com/campuseats/campuseats/internal/auth"
	handler "github.com/campuseats/campuseats/internal/handler/http"
	"github.com/campuseats/campuseats/internal/logger"
	"github.com/campuseats/campuseats/internal/realtime"
	"github.com/campuseats/campuseats/internal/repository"
	"github.com/campuseats/campuseats/internal/repository/postgres"
	"github.com/campuseats/campuseats/internal/service"
	"github.com/campuseats/campuseats/internal/worker"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context cancelled on shutdown signals
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKey, err := hex.DecodeString(cfg.AuthTokenKey)
	if err != nil {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// realtime fan-out: Redis when configured, in-process hub otherwise
	var pub realtime.Publisher
	if cfg.RedisAddr != "" {
		redisPub := realtime.NewRedisPublisher(cfg.RedisAddr)
		defer redisPub.Close()
		pub = redisPub
	} else {
		pub = realtime.NewHub()
	}

	// dependency injection
	// notifications
	notificationRepo := repository.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(notificationRepo, pub)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// orders
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, catalogRepo, notificationService, pub)
	orderHandler := handler.NewOrderHandler(orderService)

	// reports
	reportRepo := repository.NewReportRepository(db)
	reportService := service.NewReportService(reportRepo, notificationService)
	reportHandler := handler.NewReportHandler(reportService)

	// fees
	feeRepo := repository.NewFeeRepository(db)
	feeService := service.NewFeeService(feeRepo)
	feeHandler := handler.NewFeeHandler(feeService)

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(handler.Logging(logger.Log))

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Get("/api/orders", orderHandler.ListStudentOrders())
		group.Get("/api/restaurant/orders", orderHandler.ListRestaurantOrders())
		group.Patch("/api/orders/{id}/status", orderHandler.UpdateOrderStatus())
		group.Post("/api/orders/{id}/cancel", orderHandler.CancelOrder())
		group.Put("/api/orders/{id}/pos-ref", orderHandler.UpdatePosRef())
		group.Post("/api/reports", reportHandler.CreateReport())
		group.Post("/api/reports/{id}/resolve", reportHandler.ResolveReport())
		group.Post("/api/reports/{id}/confirm", reportHandler.ConfirmReport())
		group.Get("/api/notifications", notificationHandler.ListNotifications())
		group.Post("/api/notifications/{id}/read", notificationHandler.MarkNotificationRead())
		group.Get("/api/restaurant/fees", feeHandler.GetFeeSummary())
		group.Post("/api/restaurant/{id}/fees/collect", feeHandler.CollectFees())
	})

	server := &http.Server{Addr: cfg.ServerAddr, Handler: router}
	sweeper := worker.NewEscalationSweeper(reportService, cfg.SweepInterval)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		sweeper.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		logger.Log.Fatal("Error running server", zap.Error(err))
	}
}
