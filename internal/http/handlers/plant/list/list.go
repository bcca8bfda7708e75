// Package list реализует HTTP-обработчик списка растений с поиском по имени и виду.
package list

import (
	"context"
	"log/slog"
	"net/http"

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
	ListPlants(ctx context.Context, query string) ([]models.PlantView, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список растений
// @Description Возвращает растения, у которых имя или вид содержит q без учета регистра.
// @Tags Plants
// @Produce  json
// @Param q query string false "Строка поиска"
// @Success 200 {object} response.Response{data=map[string]any}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("q")
	res, err := h.service.ListPlants(r.Context(), query)
	if err != nil {
		log.Error("failed to list plants", sl.Err(err))
		status, resp := response.FromError(err, "failed to list plants")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("list plants", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"plants":     res,
	}))
}
