// Package remindercomplete реализует HTTP-обработчик отметки напоминания выполненным.
// Повторная отметка не является ошибкой.
package remindercomplete

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	CompleteReminder(ctx context.Context, id string) (models.ReminderView, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выполнить напоминание
// @Tags Reminders
// @Produce  json
// @Param id path string true "ID напоминания"
// @Success 200 {object} response.Response{data=models.ReminderView}
// @Failure 404 {object} response.ErrorResponse "Напоминание не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders/{id}/complete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.complete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("id not found in url")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	reminder, err := h.service.CompleteReminder(r.Context(), id)
	if err != nil {
		log.Error("failed to complete reminder", sl.Err(err))
		status, resp := response.FromError(err, "could not complete reminder")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("reminder completed", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(reminder))
}
