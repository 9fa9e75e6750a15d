// Package partialupdate реализует HTTP-обработчик для частичного обновления комнаты по ID.
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

// Handler управляет HTTP-запросами на частичное обновление комнаты.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для частичного обновления комнат
}

// Service описывает интерфейс бизнес-логики частичного обновления комнаты.
type Service interface {
	PartialUpdate(ctx context.Context, id int, patch models.RoomPatch) (*models.Room, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Частично обновить комнату
// @Description Обновляет только переданные поля комнаты. Пропущенные поля не меняются, ID неизменяем.
// @Tags Rooms
// @Accept  json
// @Produce  json
// @Param id path int true "ID комнаты"
// @Param request body models.RoomPatch true "Изменяемые поля комнаты"
// @Success 200 {object} response.Response "Обновлённая комната"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 404 {object} response.ErrorResponse "Комната или отель не найдены"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении комнаты"
// @Security BearerAuth
// @Router /rooms/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.partialupdate"
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

	var patch models.RoomPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", patch))

	room, err := h.service.PartialUpdate(r.Context(), id, patch)
	if err != nil {
		log.Error("failed to partially update room", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to partially update room", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"room": room,
	}))
}
