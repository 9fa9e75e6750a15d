// Package read реализует HTTP-обработчик для получения конкретного отеля по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения отеля
// и возвращает данные отеля в JSON-формате.
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

// Handler обрабатывает запросы на получение отеля по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения отеля по ID
}

// Service описывает интерфейс бизнес-логики чтения отеля.
type Service interface {
	GetByID(ctx context.Context, id int) (*models.Hotel, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить отель по ID
// @Description Возвращает отель по его идентификатору.
// @Tags Hotels
// @Produce  json
// @Param id path int true "ID отеля"
// @Success 200 {object} response.Response "Данные отеля"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Отель не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении отеля"
// @Security BearerAuth
// @Router /hotels/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.hotel.read"

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

	hotel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.Error("failed to read hotel", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to read hotel", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hotel": hotel,
	}))
}
