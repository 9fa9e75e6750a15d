// Package list реализует HTTP-обработчик для получения списка всех отелей.
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

// Handler обрабатывает запросы на получение списка отелей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения списка отелей
}

// Service описывает интерфейс бизнес-логики чтения списка отелей.
type Service interface {
	List(ctx context.Context) ([]*models.Hotel, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список отелей
// @Description Возвращает все отели, упорядоченные по ID.
// @Tags Hotels
// @Produce  json
// @Success 200 {object} response.Response "Список отелей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении отелей"
// @Security BearerAuth
// @Router /hotels [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.hotel.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	hotels, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list hotels", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to list hotels", slog.Int("count", len(hotels)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hotels": hotels,
	}))
}
