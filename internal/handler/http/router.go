package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/handler/http/middleware"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// RouterOptions carries the cross-cutting pieces the router installs.
type RouterOptions struct {
	Logger             *zap.Logger
	Metrics            middleware.HTTPObserver
	MetricsHandler     http.Handler
	RateLimitPerSecond float64
	RequestTimeout     time.Duration
}

type Router struct {
	userHandler    *UserHandler
	authHandler    *AuthHandler
	tuitHandler    *TuitHandler
	likeHandler    *ReactionHandler
	dislikeHandler *ReactionHandler
	authenticator  middleware.Authenticator
	opts           RouterOptions
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, tuitUsecase usecasecontract.ITuitUseCase, reactionUsecase usecasecontract.IReactionUseCase, opts RouterOptions) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		authHandler:    NewAuthHandler(userUsecase),
		tuitHandler:    NewTuitHandler(tuitUsecase),
		likeHandler:    NewReactionHandler(reactionUsecase, entity.ReactionLike),
		dislikeHandler: NewReactionHandler(reactionUsecase, entity.ReactionDislike),
		authenticator:  userUsecase,
		opts:           opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.Logger != nil {
		router.Use(middleware.RequestLogger(r.opts.Logger))
	}
	if r.opts.Metrics != nil {
		router.Use(middleware.Metrics(r.opts.Metrics))
	}
	if r.opts.RateLimitPerSecond > 0 {
		// rate limiter configuration
		lmt := tollbooth.NewLimiter(r.opts.RateLimitPerSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}
	router.Use(middleware.RequestTimeout(r.opts.RequestTimeout))
	router.Use(middleware.OptionalAuth(r.authenticator))

	if r.opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.opts.MetricsHandler))
	}
	router.GET("/health", func(c *gin.Context) {
		MessageHandler(c, http.StatusOK, "ok")
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/profile", r.authHandler.Profile)
		auth.POST("/logout", r.authHandler.Logout)
	}

	users := api.Group("/users")
	{
		users.GET("", r.userHandler.GetAllUsers)
		users.POST("", r.userHandler.CreateUser)
		users.DELETE("", r.userHandler.DeleteAllUsers)
		users.GET("/:uid", r.userHandler.GetUser)
		users.PUT("/:uid", r.userHandler.UpdateUser)
		users.DELETE("/:uid", r.userHandler.DeleteUser)
		users.GET("/username/:username/delete", r.userHandler.DeleteUsersByUsername)

		users.GET("/:uid/tuits", r.tuitHandler.GetTuitsByUser)
		users.POST("/:uid/tuits", r.tuitHandler.CreateTuit)

		users.GET("/:uid/likes", r.likeHandler.ListTuitsReactedByUser)
		users.POST("/:uid/likes/:tid", r.likeHandler.React)
		users.PUT("/:uid/likes/:tid", r.likeHandler.Toggle)
		users.DELETE("/:uid/unlikes/:tid", r.likeHandler.Unreact)

		users.GET("/:uid/dislikes", r.dislikeHandler.ListTuitsReactedByUser)
		users.POST("/:uid/dislikes/:tid", r.dislikeHandler.React)
		users.PUT("/:uid/dislikes/:tid", r.dislikeHandler.Toggle)
		users.DELETE("/:uid/undislikes/:tid", r.dislikeHandler.Unreact)
	}

	tuits := api.Group("/tuits")
	{
		tuits.GET("", r.tuitHandler.GetTuits)
		tuits.GET("/:tid", r.tuitHandler.GetTuit)
		tuits.PUT("/:tid", r.tuitHandler.UpdateTuit)
		tuits.DELETE("/:tid", r.tuitHandler.DeleteTuit)
		tuits.GET("/:tid/likes", r.likeHandler.ListReactors)
		tuits.GET("/:tid/dislikes", r.dislikeHandler.ListReactors)
	}
}
