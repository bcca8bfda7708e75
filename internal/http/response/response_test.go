package response

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

func TestValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(models.DummyReminder{Task: "Water"})
	require.Error(t, err)
	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field PlantID is a required field, field DueDate is a required field", resp.Error)

	err = v.Struct(models.DummyUserStatus{Status: "banned"})
	require.Error(t, err)
	resp = ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Status must be one of: active inactive", resp.Error)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"неверная дата", fmt.Errorf("op: %w", datestatus.ErrInvalidDate), http.StatusBadRequest, "invalid date, expected YYYY-MM-DD"},
		{"пустое имя", fmt.Errorf("op: %w", garden.ErrEmptyName), http.StatusUnprocessableEntity, "name and type must not be empty"},
		{"растение не найдено", fmt.Errorf("op: %w", storage.ErrPlantNotFound), http.StatusNotFound, "plant not found"},
		{"напоминание не найдено", storage.ErrReminderNotFound, http.StatusNotFound, "reminder not found"},
		{"пользователь не найден", storage.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"отзыв не найден", storage.ErrFeedbackNotFound, http.StatusNotFound, "feedback not found"},
		{"прочая ошибка", context.Canceled, http.StatusInternalServerError, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := FromError(tt.err, "boom")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}
