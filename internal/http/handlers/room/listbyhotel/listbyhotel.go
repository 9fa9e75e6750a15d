// Package listbyhotel реализует HTTP-обработчик для получения комнат конкретного отеля.
//
// Если отель с указанным ID не существует, возвращается 404 —
// пустой список отдаётся только для существующего отеля без комнат.
package listbyhotel

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

// Handler обрабатывает запросы на получение комнат отеля.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения комнат отеля
}

// Service описывает интерфейс бизнес-логики чтения комнат отеля.
type Service interface {
	ListByHotelID(ctx context.Context, hotelID int) ([]*models.Room, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить комнаты отеля
// @Description Возвращает все комнаты указанного отеля.
// @Tags Rooms
// @Produce  json
// @Param id path int true "ID отеля"
// @Success 200 {object} response.Response "Список комнат отеля"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Отель не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении комнат"
// @Security BearerAuth
// @Router /hotels/{id}/rooms [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.listbyhotel"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	hotelID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	rooms, err := h.service.ListByHotelID(r.Context(), hotelID)
	if err != nil {
		log.Error("failed to list rooms by hotel", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to list rooms by hotel", slog.Int("hotel_id", hotelID), slog.Int("count", len(rooms)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"rooms": rooms,
	}))
}
