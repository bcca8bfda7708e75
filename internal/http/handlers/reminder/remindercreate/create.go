// Package remindercreate реализует HTTP-обработчик создания напоминания для существующего растения.
package remindercreate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

// Handler управляет HTTP-запросами на создание напоминаний.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания напоминания.
type Service interface {
	CreateReminder(ctx context.Context, req models.DummyReminder) (models.Reminder, error)
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
// @Summary Создать напоминание
// @Description Создает напоминание со статусом pending. Имя растения подставляется из растения.
// @Tags Reminders
// @Accept  json
// @Produce  json
// @Param request body models.DummyReminder true "Данные напоминания"
// @Success 201 {object} response.Response{data=models.Reminder}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или дата"
// @Failure 404 {object} response.ErrorResponse "Растение не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyReminder
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	reminder, err := h.service.CreateReminder(r.Context(), req)
	if err != nil {
		log.Error("failed to create reminder", sl.Err(err))
		status, resp := response.FromError(err, "could not create reminder")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("reminder created", slog.String("id", reminder.ID), slog.String("plant_id", reminder.PlantID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(reminder))
}
