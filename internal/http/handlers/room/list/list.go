// Package list реализует HTTP-обработчик для получения списка всех комнат.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hotel-aggregator/internal/http/response"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Handler обрабатывает запросы на получение списка комнат.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения списка комнат
}

// Service описывает интерфейс бизнес-логики чтения списка комнат.
type Service interface {
	List(ctx context.Context) ([]*models.Room, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список комнат
// @Description Возвращает все комнаты, упорядоченные по ID.
// @Tags Rooms
// @Produce  json
// @Success 200 {object} response.Response "Список комнат"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении комнат"
// @Security BearerAuth
// @Router /rooms [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rooms, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list rooms", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to list rooms", slog.Int("count", len(rooms)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"rooms": rooms,
	}))
}
