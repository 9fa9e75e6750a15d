// Package update реализует HTTP-обработчик для полного обновления отеля по ID.
//
// Handler принимает JSON-запрос с полным набором полей отеля, валидирует их,
// вызывает бизнес-логику обновления и возвращает обновлённую запись.
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

// Handler управляет HTTP-запросами на полное обновление отеля.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для обновления отелей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики полного обновления отеля.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyHotel) (*models.Hotel, error)
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
// @Summary Обновить отель
// @Description Полностью заменяет поля отеля по его идентификатору. ID в теле игнорируется.
// @Tags Hotels
// @Accept  json
// @Produce  json
// @Param id path int true "ID отеля"
// @Param request body models.DummyHotel true "Новые данные отеля"
// @Success 200 {object} response.Response "Обновлённый отель"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 404 {object} response.ErrorResponse "Отель не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении отеля"
// @Security BearerAuth
// @Router /hotels/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.hotel.update"
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

	var req models.DummyHotel
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

	hotel, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update hotel", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to update hotel", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hotel": hotel,
	}))
}
