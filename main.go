package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civicconnect-be/config"
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/routes"
	"civicconnect-be/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// optional .env for local development; containers set env directly
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger(cfg.Env)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	log.Info().Msg("connected to MongoDB")

	if err := models.EnsureIssueIndexes(db.Collection("issues")); err != nil {
		log.Fatal().Err(err).Msg("failed to create issue indexes")
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = config.ConnectRedis(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		log.Info().Msg("connected to Redis")
	}

	// The verifier is built once here and injected; with auth disabled the
	// gate is a no-op.
	var verifier utils.TokenVerifier
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			log.Fatal().Msg("ENABLE_AUTH is set but JWT_SECRET is empty")
		}
		verifier = utils.NewJWTVerifier(cfg.JWTSecret)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create uploads directory")
	}

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middlewares.RequestLogger(log))
	r.Use(gin.Recovery())
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	}
	r.Use(cors.New(corsCfg))

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	issueController := controllers.NewIssueController(db, cfg.UploadDir, log)
	analyticsController := controllers.NewAnalyticsController(db, log)

	routes.IssueRoutes(r, issueController, verifier, redisClient, cfg.CreateLimit)
	routes.AnalyticsRoutes(r, analyticsController)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info().Msg("shutdown complete")
}
