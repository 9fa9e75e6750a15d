// Package partialupdate реализует HTTP-обработчик для частичного обновления отеля по ID.
//
// Handler принимает JSON-запрос, в котором заполнены только изменяемые поля.
// Отсутствующие поля сохраняют текущие значения записи.
package partialupdate

import (
	"context"
	"encoding/json"
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

// Handler управляет HTTP-запросами на частичное обновление отеля.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для частичного обновления отелей
}

// Service описывает интерфейс бизнес-логики частичного обновления отеля.
type Service interface {
	PartialUpdate(ctx context.Context, id int, patch models.HotelPatch) (*models.Hotel, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Частично обновить отель
// @Description Обновляет только переданные поля отеля. Пропущенные поля не меняются, ID неизменяем.
// @Tags Hotels
// @Accept  json
// @Produce  json
// @Param id path int true "ID отеля"
// @Param request body models.HotelPatch true "Изменяемые поля отеля"
// @Success 200 {object} response.Response "Обновлённый отель"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 404 {object} response.ErrorResponse "Отель не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении отеля"
// @Security BearerAuth
// @Router /hotels/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.hotel.partialupdate"
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

	var patch models.HotelPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", patch))

	hotel, err := h.service.PartialUpdate(r.Context(), id, patch)
	if err != nil {
		log.Error("failed to partially update hotel", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to partially update hotel", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hotel": hotel,
	}))
}
