// Package remove реализует HTTP-обработчик удаления растения.
// Вместе с растением удаляются все его напоминания.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	RemovePlant(ctx context.Context, id string) (int, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить растение
// @Description Удаляет растение и его напоминания, возвращает число удаленных напоминаний.
// @Tags Plants
// @Produce  json
// @Param id path string true "ID растения"
// @Success 200 {object} response.Response{data=map[string]int}
// @Failure 404 {object} response.ErrorResponse "Растение не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.remove"
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

	removed, err := h.service.RemovePlant(r.Context(), id)
	if err != nil {
		log.Error("failed to delete plant", sl.Err(err))
		status, resp := response.FromError(err, "failed to delete plant")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("plant deleted", slog.String("id", id), slog.Int("reminders_removed", removed))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count":     1,
		"reminders_removed": removed,
	}))
}
