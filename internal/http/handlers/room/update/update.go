// Package update реализует HTTP-обработчик для полного обновления комнаты по ID.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hotel-aggregator/internal/http/response"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на полное обновление комнаты.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для обновления комнат
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики полного обновления комнаты.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyRoom) (*models.Room, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить комнату
// @Description Полностью заменяет поля комнаты по её идентификатору. ID в теле игнорируется.
// @Tags Rooms
// @Accept  json
// @Produce  json
// @Param id path int true "ID комнаты"
// @Param request body models.DummyRoom true "Новые данные комнаты"
// @Success 200 {object} response.Response "Обновлённая комната"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 404 {object} response.ErrorResponse "Комната или отель не найдены"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении комнаты"
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.update"
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

	var req models.DummyRoom
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	room, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update room", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to update room", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"room": room,
	}))
}
