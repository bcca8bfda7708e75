// Package update реализует HTTP-обработчик частичного обновления растения.
// Поля, отсутствующие в JSON, не меняются; переименование распространяется на напоминания.
package update

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
	UpdatePlant(ctx context.Context, id string, patch models.PlantPatch) (models.Plant, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить растение
// @Tags Plants
// @Accept  json
// @Produce  json
// @Param id path string true "ID растения"
// @Param request body models.DummyPlantPatch true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.Plant}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или дата"
// @Failure 404 {object} response.ErrorResponse "Растение не найдено"
// @Failure 422 {object} response.ErrorResponse "Пустое имя или вид"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.update"
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

	var req models.DummyPlantPatch
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	plant, err := h.service.UpdatePlant(r.Context(), id, req.ToPatch())
	if err != nil {
		log.Error("failed to update plant", sl.Err(err))
		status, resp := response.FromError(err, "could not update plant")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("plant updated", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(plant))
}
