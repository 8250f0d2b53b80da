package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuiter/tuiter/internal/domain/entity"
	handlerHttp "github.com/tuiter/tuiter/internal/handler/http"
	redisclient "github.com/tuiter/tuiter/internal/infrastructure/cache"
	"github.com/tuiter/tuiter/internal/infrastructure/config"
	database "github.com/tuiter/tuiter/internal/infrastructure/database"
	"github.com/tuiter/tuiter/internal/infrastructure/jwt"
	"github.com/tuiter/tuiter/internal/infrastructure/logger"
	natspub "github.com/tuiter/tuiter/internal/infrastructure/messaging/nats"
	"github.com/tuiter/tuiter/internal/infrastructure/metrics"
	passwordservice "github.com/tuiter/tuiter/internal/infrastructure/password_service"
	"github.com/tuiter/tuiter/internal/infrastructure/repository/mongodb"
	"github.com/tuiter/tuiter/internal/infrastructure/store"
	"github.com/tuiter/tuiter/internal/infrastructure/uuidgen"
	"github.com/tuiter/tuiter/internal/infrastructure/validator"
	"github.com/tuiter/tuiter/internal/usecase"
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.NewZapLogger("info", "json").Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(appConfig.LogLevel, appConfig.LogFormat)
	if appConfig.InsecureJWTSecret() {
		appLogger.Warnf("JWT_SECRET is empty or left at its default; set a strong secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, appConfig, appLogger)
	stop()
	if err != nil {
		appLogger.Fatalf("%v", err)
	}
	appLogger.Sync()
}

// run wires the service and serves until ctx is cancelled. Every resource it
// opens is released before it returns.
func run(ctx context.Context, appConfig *config.Config, appLogger *logger.ZapLogger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Errorf("failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(appConfig.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	tuitRepo := mongodb.NewTuitRepository(db)
	likeRepo := mongodb.NewReactionRepository(db, entity.ReactionLike)
	dislikeRepo := mongodb.NewReactionRepository(db, entity.ReactionDislike)
	tokenRepo := mongodb.NewTokenRepository(db)

	if err := ensureIndexes(ctx, appConfig, userRepo, tokenRepo, likeRepo, dislikeRepo); err != nil {
		return err
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry()))
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	metricsManager := metrics.NewMetricsManager()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	tuitUsecase := usecase.NewTuitUsecase(tuitRepo, userRepo, uuidGenerator, appLogger)
	reactionUsecase := usecase.NewReactionUsecase(likeRepo, dislikeRepo, tuitRepo, appLogger)
	reactionUsecase.SetObserver(metricsManager)

	// Optional Dependency Injection: Redis cache, logout denylist and toggle lock
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisclient.Close(rdb)

		tuitCache := store.NewTuitCacheStore(rdb, appConfig.GetTuitCacheTTL())
		tuitUsecase.SetTuitCache(tuitCache, metricsManager)
		reactionUsecase.SetTuitCache(tuitCache)
		userUsecase.SetTokenDenylist(store.NewTokenDenylist(rdb))
		if appConfig.GetToggleLockEnabled() {
			reactionUsecase.SetLocker(store.NewToggleLocker(rdb, appLogger))
		}
		appLogger.Infof("redis enabled (toggle lock: %t)", appConfig.GetToggleLockEnabled())
	} else {
		userUsecase.SetTokenDenylist(tokenRepo)
	}

	// Optional Dependency Injection: NATS events
	if appConfig.NATSURL != "" {
		publisher, err := natspub.NewPublisher(appConfig.NATSURL, appLogger.Zap())
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer publisher.Close()
		reactionUsecase.SetEventPublisher(publisher)
	}

	if appConfig.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, tuitUsecase, reactionUsecase, handlerHttp.RouterOptions{
		Logger:             appLogger.Zap(),
		Metrics:            metricsManager,
		MetricsHandler:     metricsManager.Handler(),
		RateLimitPerSecond: appConfig.RateLimitPerSecond,
		RequestTimeout:     appConfig.GetRequestTimeout(),
	})
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Zap().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.GetShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("server stopped: %w", err)
	default:
		return nil
	}
}

func ensureIndexes(ctx context.Context, appConfig *config.Config, userRepo *mongodb.MongoUserRepository, tokenRepo *mongodb.TokenRepository, reactionRepos ...*mongodb.ReactionRepository) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	for _, repo := range reactionRepos {
		if err := repo.EnsureIndexes(ctx, appConfig.GetReactionUniqueIndex()); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", repo.Kind(), err)
		}
	}
	if appConfig.RedisURL == "" {
		if err := tokenRepo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("failed to create revoked token indexes: %w", err)
		}
	}
	return nil
}
