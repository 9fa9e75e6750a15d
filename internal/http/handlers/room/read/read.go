// Package read реализует HTTP-обработчик для получения конкретной комнаты по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/hotel-aggregator/internal/http/response"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Handler обрабатывает запросы на получение комнаты по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения комнаты по ID
}

// Service описывает интерфейс бизнес-логики чтения комнаты.
type Service interface {
	GetByID(ctx context.Context, id int) (*models.Room, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить комнату по ID
// @Description Возвращает комнату по её идентификатору.
// @Tags Rooms
// @Produce  json
// @Param id path int true "ID комнаты"
// @Success 200 {object} response.Response "Данные комнаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Комната не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении комнаты"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	room, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.Error("failed to read room", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to read room", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"room": room,
	}))
}
