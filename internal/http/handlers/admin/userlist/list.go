// Package userlist реализует HTTP-обработчик списка пользователей с поиском по имени и почте.
package userlist

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
	ListUsers(ctx context.Context, query string) ([]models.AdminUser, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Tags Admin
// @Produce  json
// @Param q query string false "Строка поиска"
// @Success 200 {object} response.Response{data=map[string]any}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		status, resp := response.FromError(err, "failed to list users")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("list users", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"users":      res,
	}))
}
