package hotelaggregator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/auth/validate"
	hotelcreate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/create"
	hotellist "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/list"
	hotelpartialupdate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/partialupdate"
	hotelread "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/read"
	hotelremove "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/remove"
	hotelupdate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/hotel/update"
	roomcreate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/create"
	roomlist "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/list"
	roomlistbyhotel "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/listbyhotel"
	roompartialupdate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/partialupdate"
	roomread "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/read"
	roomremove "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/remove"
	roomupdate "github.com/magabrotheeeer/hotel-aggregator/internal/http/handlers/room/update"
	"github.com/magabrotheeeer/hotel-aggregator/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/auth"
	hotelservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/hotel"
	roomservice "github.com/magabrotheeeer/hotel-aggregator/internal/services/room"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, hotelService *hotelservice.Service, roomService *roomservice.Service, authService *authservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/token/validate", validate.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/hotels", hotelcreate.New(logger, hotelService).ServeHTTP)
			r.Get("/hotels", hotellist.New(logger, hotelService).ServeHTTP)
			r.Get("/hotels/{id}", hotelread.New(logger, hotelService).ServeHTTP)
			r.Put("/hotels/{id}", hotelupdate.New(logger, hotelService).ServeHTTP)
			r.Patch("/hotels/{id}", hotelpartialupdate.New(logger, hotelService).ServeHTTP)
			r.Delete("/hotels/{id}", hotelremove.New(logger, hotelService).ServeHTTP)
			r.Get("/hotels/{id}/rooms", roomlistbyhotel.New(logger, roomService).ServeHTTP)

			r.Post("/rooms", roomcreate.New(logger, roomService).ServeHTTP)
			r.Get("/rooms", roomlist.New(logger, roomService).ServeHTTP)
			r.Get("/rooms/{id}", roomread.New(logger, roomService).ServeHTTP)
			r.Put("/rooms/{id}", roomupdate.New(logger, roomService).ServeHTTP)
			r.Patch("/rooms/{id}", roompartialupdate.New(logger, roomService).ServeHTTP)
			r.Delete("/rooms/{id}", roomremove.New(logger, roomService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
