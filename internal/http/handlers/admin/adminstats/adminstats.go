// Package adminstats реализует HTTP-обработчик сводной статистики панели администратора.
package adminstats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/lib/stats"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Stats(ctx context.Context) (stats.Stats, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика
// @Description Пользователи, новые за месяц, новые отзывы, растения и процент выполненных напоминаний.
// @Tags Admin
// @Produce  json
// @Success 200 {object} response.Response{data=stats.Stats}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to calculate stats", sl.Err(err))
		status, resp := response.FromError(err, "could not calculate stats")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
