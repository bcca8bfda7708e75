// Package response формирует JSON-ответы обработчиков в едином конверте
// {"status":..., "data":...} или {"status":"Error", "error":...}.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

// Response конверт ответа. Status равен "OK" или "Error".
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse ответ с ошибкой, он же тип для аннотаций @Failure.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError собирает нарушения валидации в одну строку через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}

// FromError подбирает HTTP-статус и сообщение по ошибке сервисного слоя.
// fallback используется для неизвестных ошибок, которые отдаются как 500.
func FromError(err error, fallback string) (int, ErrorResponse) {
	switch {
	case errors.Is(err, datestatus.ErrInvalidDate):
		return http.StatusBadRequest, Error("invalid date, expected YYYY-MM-DD")
	case errors.Is(err, garden.ErrEmptyName):
		return http.StatusUnprocessableEntity, Error("name and type must not be empty")
	case errors.Is(err, storage.ErrPlantNotFound):
		return http.StatusNotFound, Error("plant not found")
	case errors.Is(err, storage.ErrReminderNotFound):
		return http.StatusNotFound, Error("reminder not found")
	case errors.Is(err, storage.ErrUserNotFound):
		return http.StatusNotFound, Error("user not found")
	case errors.Is(err, storage.ErrFeedbackNotFound):
		return http.StatusNotFound, Error("feedback not found")
	default:
		return http.StatusInternalServerError, Error(fallback)
	}
}
