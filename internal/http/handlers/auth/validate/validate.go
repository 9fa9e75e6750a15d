// Package validate реализует HTTP-обработчик для проверки JWT токена.
//
// Токен проверяется локально по подписи и сроку действия,
// без обращения к базе данных.
package validate

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
)

// Request — структура входных данных для проверки токена.
type Request struct {
	Token string `json:"token" validate:"required"`
}

// Handler обрабатывает HTTP-запросы на проверку токена.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис авторизации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики проверки токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом авторизации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверить токен
// @Description Проверяет подпись и срок действия JWT. Возвращает имя пользователя из токена.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Токен для проверки"
// @Success 200 {object} response.Response "Токен валиден"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Токен недействителен или истёк"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /token/validate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.validate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	username, err := h.service.ValidateToken(r.Context(), req.Token)
	if err != nil {
		log.Error("token validation failed", sl.Err(err))
		response.Err(w, r, err)
		return
	}

	log.Info("token validation success", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"valid":    true,
		"username": username,
	}))
}
