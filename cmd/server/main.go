// Command server runs the Fyyur directory API.
//
// @title Fyyur API
// @version 1.0
// @description Venue and artist booking directory.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the editor JWT.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/config"
	_ "fyyur/docs"
	"fyyur/internal/adapters/auth"
	"fyyur/internal/adapters/email"
	"fyyur/internal/adapters/events"
	"fyyur/internal/adapters/ratelimit"
	httpdelivery "fyyur/internal/delivery/http"
	"fyyur/internal/delivery/http/controllers"
	"fyyur/internal/repository/postgres"
	"fyyur/internal/services"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped cleanly")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(startupCtx); err != nil {
		return err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(cfg.DBUrl, logger); err != nil {
			return err
		}
	}
	store := postgres.NewStore(db)

	limiter, closeLimiter := newLimiter(startupCtx, cfg, logger)
	defer closeLimiter()

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkip,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	publisher := events.NewPublisher(cfg.AMQPUrl, events.DefaultQueue, logger)

	tokens := auth.NewJWT(cfg.JWTSecret)
	if cfg.EditorEmail == "" || cfg.EditorPasswordHash == "" {
		logger.Warn("editor credentials not configured, mutating routes are unreachable")
	}

	directory := services.NewDirectoryService(store, time.Now, cfg.RequestTimeout)
	booking := services.NewBookingService(store, publisher, emailService, cfg.Email.NotifyAddress, logger, time.Now, cfg.RequestTimeout)
	authService := services.NewAuthService(auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, cfg.EditorEmail, cfg.EditorPasswordHash, cfg.TokenExpiry)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Venues:  controllers.NewVenueController(logger, directory, booking),
		Artists: controllers.NewArtistController(logger, directory, booking),
		Shows:   controllers.NewShowController(logger, directory, booking),
		Auth:    controllers.NewAuthController(logger, authService),
		Health:  controllers.NewHealthController(logger, store, cfg.RequestTimeout),
	}, tokens, limiter, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(mux, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return server.Shutdown(shutdownCtx)
}

// newLimiter returns the limiter for mutating routes: Redis when reachable,
// otherwise an in-process bucket. A nil limiter disables rate limiting.
func newLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	if !cfg.Rate.Enabled {
		return nil, func() {}
	}
	rlCfg := ratelimit.Config{
		Capacity:       cfg.Rate.Capacity,
		RefillInterval: cfg.Rate.RefillInterval,
		Prefix:         cfg.Rate.Prefix,
	}
	if cfg.Redis.Addr == "" {
		return ratelimit.NewLocal(rlCfg), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Error("redis close failed", "err", err)
		}
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-process rate limiter", "addr", cfg.Redis.Addr, "err", err)
		closeClient()
		return ratelimit.NewLocal(rlCfg), func() {}
	}
	return ratelimit.NewRedis(client, rlCfg), closeClient
}
