// Package hotelaggregator собирает приложение: хранилище, кэш, брокер событий,
// сервисы и HTTP-сервер с маршрутами.
package hotelaggregator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/hotel-aggregator/internal/cache"
	"github.com/magabrotheeeer/hotel-aggregator/internal/config"
	"github.com/magabrotheeeer/hotel-aggregator/internal/events"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/migrations"
	authservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/auth"
	hotelservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/hotel"
	roomservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/room"
	"github.com/magabrotheeeer/hotel-aggregator/internal/storage/repository"
)

// App хранит собранные зависимости приложения и HTTP-сервер.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	publisher *events.Publisher
}

// New создает приложение: подключается к базе, накатывает миграции,
// подключает redis и rabbitmq, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	publisher, err := events.NewPublisher(cfg.RabbitConnection.AddressRabbit, cfg.RabbitConnection.Retries, cfg.RabbitConnection.RetryDelay)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	hotelService := hotelservice.New(db, cacheRedis, publisher, logger)
	roomService := roomservice.New(db, hotelService, cacheRedis, publisher, logger)
	authService := authservice.New(db, jwtMaker, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, hotelService, roomService, authService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		publisher: publisher,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до его остановки или отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.publisher.Close(); cerr != nil {
			a.logger.Error("failed to close event publisher", sl.Err(cerr))
		}
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", sl.Err(cerr))
		}
		return err
	}
}
