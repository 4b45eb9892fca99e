package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/CodellaAI/viewtube-backend/internal/api/handler"
	"github.com/CodellaAI/viewtube-backend/internal/api/middleware"
	"github.com/CodellaAI/viewtube-backend/internal/config"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/cache"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/postgres"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/queue"
	"github.com/CodellaAI/viewtube-backend/internal/infrastructure/storage"
	"github.com/CodellaAI/viewtube-backend/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	pool := pgClient.Pool()
	videoRepo := postgres.NewVideoRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	engagementRepo := postgres.NewEngagementRepository(pool)

	videoCache := cache.NewRedisVideoCache(redisClient)

	videoSvc := usecase.NewCachedVideoService(
		usecase.NewVideoService(
			videoRepo,
			engagementRepo,
			subscriptionRepo,
			storageClient,
			queueClient,
			usecase.DefaultVideoServiceConfig(),
		),
		videoCache,
		usecase.DefaultCachedVideoServiceConfig(),
	)
	commentSvc := usecase.NewCommentService(commentRepo, videoRepo)
	userSvc := usecase.NewUserService(userRepo, subscriptionRepo, storageClient, usecase.DefaultUserServiceConfig())
	engagementSvc := usecase.NewEngagementService(engagementRepo)

	videoHandler := handler.NewVideoHandler(videoSvc, engagementSvc)
	commentHandler := handler.NewCommentHandler(commentSvc, engagementSvc)
	userHandler := handler.NewUserHandler(userSvc, videoSvc)

	r := setupRouter(logger, videoHandler, commentHandler, userHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func setupRouter(
	logger *slog.Logger,
	videos *handler.VideoHandler,
	comments *handler.CommentHandler,
	users *handler.UserHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Principal)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.Get("/", videos.List)
			r.Post("/", videos.Create)
			r.Get("/search", videos.Search)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", videos.Get)
				r.Patch("/", videos.Update)
				r.Delete("/", videos.Delete)
				r.Post("/views", videos.IncrementViews)
				r.Get("/recommended", videos.Recommended)
				r.Put("/like", videos.Like)
				r.Delete("/like", videos.Unlike)
				r.Put("/dislike", videos.Dislike)
				r.Delete("/dislike", videos.Undislike)
				r.Get("/reaction", videos.ReactionStatus)
				r.Get("/comments", comments.ListForVideo)
				r.Post("/comments", comments.Create)
			})
		})

		r.Route("/comments/{id}", func(r chi.Router) {
			r.Patch("/", comments.Update)
			r.Delete("/", comments.Delete)
			r.Get("/replies", comments.ListReplies)
			r.Put("/like", comments.Like)
			r.Delete("/like", comments.Unlike)
			r.Put("/dislike", comments.Dislike)
			r.Delete("/dislike", comments.Undislike)
		})

		r.Route("/users", func(r chi.Router) {
			r.Patch("/me", users.UpdateProfile)
			r.Put("/me/avatar", users.UpdateAvatar)
			r.Get("/me/subscriptions", users.ListSubscriptions)
			r.Get("/me/likes", users.ListLikedVideos)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", users.GetProfile)
				r.Get("/videos", users.ListVideos)
				r.Put("/subscription", users.Subscribe)
				r.Delete("/subscription", users.Unsubscribe)
				r.Get("/subscription", users.SubscriptionStatus)
			})
		})
	})

	return r
}
