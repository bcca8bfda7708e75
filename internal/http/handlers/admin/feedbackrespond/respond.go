// Package feedbackrespond реализует HTTP-обработчик отметки отзыва как отвеченного.
package feedbackrespond

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
	RespondFeedback(ctx context.Context, id string) (models.Feedback, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Ответить на отзыв
// @Tags Admin
// @Produce  json
// @Param id path string true "ID отзыва"
// @Success 200 {object} response.Response{data=models.Feedback}
// @Failure 404 {object} response.ErrorResponse "Отзыв не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/feedback/{id}/respond [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.feedbackrespond"
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

	feedback, err := h.service.RespondFeedback(r.Context(), id)
	if err != nil {
		log.Error("failed to respond to feedback", sl.Err(err))
		status, resp := response.FromError(err, "could not respond to feedback")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(feedback))
}
