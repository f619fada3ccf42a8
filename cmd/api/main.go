package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sorteix/rifa-engine/internal/adapter/handler"
	"github.com/sorteix/rifa-engine/internal/adapter/repository/postgres"
	"github.com/sorteix/rifa-engine/internal/config"
	"github.com/sorteix/rifa-engine/internal/core/services"
	"github.com/sorteix/rifa-engine/internal/platform/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)

	db, err := database.NewPostgresDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db after retries")
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")

	raffleRepo := postgres.NewRaffleRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	raffleService := services.NewRaffleService(raffleRepo, ticketRepo, redisClient, cfg.ReservationTTL)

	sweeper := services.NewSweeper(raffleService, cfg.SweepSpec)
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.SweepSpec).Msg("failed to start sweeper")
	}
	defer sweeper.Stop()

	raffleHandler := handler.NewRaffleHandler(raffleService)

	router := gin.New()
	router.Use(gin.Recovery())
	raffleHandler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
