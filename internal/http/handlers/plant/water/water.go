// Package water реализует HTTP-обработчик отметки о поливе:
// lastWatered становится сегодняшней датой, nextWatering сдвигается на интервал полива.
package water

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
	WaterPlant(ctx context.Context, id string) (models.Plant, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Полить растение
// @Tags Plants
// @Produce  json
// @Param id path string true "ID растения"
// @Success 200 {object} response.Response{data=models.Plant}
// @Failure 404 {object} response.ErrorResponse "Растение не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants/{id}/water [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.water"
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

	plant, err := h.service.WaterPlant(r.Context(), id)
	if err != nil {
		log.Error("failed to water plant", sl.Err(err))
		status, resp := response.FromError(err, "could not water plant")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("plant watered", slog.String("id", id), slog.String("next", plant.NextWatering))
	render.JSON(w, r, response.StatusOKWithData(plant))
}
