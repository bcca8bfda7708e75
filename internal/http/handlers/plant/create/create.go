// Package create реализует HTTP-обработчик добавления нового растения.
//
// Handler принимает JSON с данными растения, валидирует его, вызывает сервис
// и возвращает созданную запись. Незаданные поля получают значения по умолчанию.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/leaflog/internal/http/response"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

// Handler управляет HTTP-запросами на добавление растений.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики сада
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики добавления растения.
type Service interface {
	CreatePlant(ctx context.Context, req models.DummyPlant) (models.Plant, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить растение
// @Description Создает растение. Пустые image, lastWatered, nextWatering и growthStage заполняются значениями по умолчанию.
// @Tags Plants
// @Accept  json
// @Produce  json
// @Param request body models.DummyPlant true "Данные растения"
// @Success 201 {object} response.Response{data=models.Plant}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или дата"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plants [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plant.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlant
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	plant, err := h.service.CreatePlant(r.Context(), req)
	if err != nil {
		log.Error("failed to create plant", sl.Err(err))
		status, resp := response.FromError(err, "could not create plant")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("plant created", slog.String("id", plant.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(plant))
}
