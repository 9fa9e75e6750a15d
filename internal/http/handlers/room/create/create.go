// Package create реализует HTTP-обработчик для создания новых комнат.
//
// Handler принимает JSON-запрос с данными комнаты, валидирует их,
// вызывает бизнес-логику создания комнаты через сервис и возвращает созданную запись.
// Комната создается только при существовании отеля, на который она ссылается.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/hotel-aggregator/internal/http/response"
	"github.com/magabrotheeeer/hotel-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/hotel-aggregator/internal/models"
)

// Handler управляет HTTP-запросами на создание новых комнат.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания комнат
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания комнаты.
type Service interface {
	Create(ctx context.Context, req models.DummyRoom) (*models.Room, error)
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
// @Summary Создать новую комнату
// @Description Создает новую комнату в существующем отеле. Возвращает созданную запись с присвоенным ID.
// @Tags Rooms
// @Accept  json
// @Produce  json
// @Param request body models.DummyRoom true "Данные новой комнаты"
// @Success 200 {object} response.Response "Успешное создание комнаты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 404 {object} response.ErrorResponse "Отель не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании комнаты"
// @Security BearerAuth
// @Router /rooms [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.room.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	room, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create room", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to create room", slog.Int("id", room.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"room": room,
	}))
}
