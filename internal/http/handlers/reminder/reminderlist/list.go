// Package reminderlist реализует HTTP-обработчик списка напоминаний.
//
// Параметр q ищет по имени растения и задаче, status принимает all, pending или completed.
// Результат отсортирован по сроку и дополнен сводкой по всем напоминаниям.
package reminderlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListReminders(ctx context.Context, query, status string) (garden.ReminderList, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список напоминаний
// @Tags Reminders
// @Produce  json
// @Param q query string false "Строка поиска"
// @Param status query string false "all, pending или completed"
// @Success 200 {object} response.Response{data=garden.ReminderList}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	res, err := h.service.ListReminders(r.Context(), q.Get("q"), q.Get("status"))
	if err != nil {
		log.Error("failed to list reminders", sl.Err(err))
		status, resp := response.FromError(err, "failed to list reminders")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("list reminders", "count", len(res.Reminders))
	render.JSON(w, r, response.StatusOKWithData(res))
}
