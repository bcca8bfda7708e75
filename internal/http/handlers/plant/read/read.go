// Package read реализует HTTP-обработчик получения растения по ID
// вместе со статусом полива на сегодня.
package read

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

// Handler обрабатывает запросы на получение растения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения растения.
type Service interface {
	GetPlant(ctx context.Context, id string) (models.PlantView, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить растение
// @Description Возвращает растение и статус полива: дни до полива, категорию и подпись.
// @Tags Plants
// @Produce  json
// @Param id path string true "ID растения"
// @Success 200 {object} response.Response{data=models.PlantView}
// @Failure 400 {object} response.ErrorResponse "Пустой ID"
// @Failure 404 {object} response.ErrorResponse "Растение не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.read"
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

	plant, err := h.service.GetPlant(r.Context(), id)
	if err != nil {
		log.Error("failed to read plant", sl.Err(err))
		status, resp := response.FromError(err, "could not read plant")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Debug("plant read", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(plant))
}
