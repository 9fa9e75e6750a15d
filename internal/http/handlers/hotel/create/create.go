// Package create реализует HTTP-обработчик для создания новых отелей.
//
// Handler принимает JSON-запрос с данными отеля, валидирует их,
// вызывает бизнес-логику создания отеля через сервис и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
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

// Handler управляет HTTP-запросами на создание новых отелей.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания отеля,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания отелей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания отеля.
type Service interface {
	Create(ctx context.Context, req models.DummyHotel) (*models.Hotel, error)
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
// @Summary Создать новый отель
// @Description Создает новый отель. Возвращает созданную запись с присвоенным ID.
// @Tags Hotels
// @Accept  json
// @Produce  json
// @Param request body models.DummyHotel true "Данные нового отеля"
// @Success 200 {object} response.Response "Успешное создание отеля"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании отеля"
// @Security BearerAuth
// @Router /hotels [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.hotel.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	hotel, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create hotel", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("success to create hotel", slog.Int("id", hotel.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hotel": hotel,
	}))
}
