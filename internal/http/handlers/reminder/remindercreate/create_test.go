package remindercreate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

// MockService реализует интерфейс remindercreate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateReminder(ctx context.Context, req models.DummyReminder) (models.Reminder, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Reminder), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание",
			body: `{"plantId":"1","task":"Fertilize","dueDate":"2025-08-15"}`,
			setupMock: func(m *MockService) {
				req := models.DummyReminder{PlantID: "1", Task: "Fertilize", DueDate: "2025-08-15"}
				m.On("CreateReminder", mock.Anything, req).Return(models.Reminder{
					ID: "r-1", PlantID: "1", PlantName: "Fiddle Leaf Fig", Task: "Fertilize",
					DueDate: "2025-08-15", Status: models.ReminderPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"plantName":"Fiddle Leaf Fig"`,
		},
		{
			name:           "нет срока",
			body:           `{"plantId":"1","task":"Fertilize"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field DueDate is a required field`,
		},
		{
			name:           "некорректный JSON",
			body:           `not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "неверная дата",
			body: `{"plantId":"1","task":"Water","dueDate":"2025-13-40"}`,
			setupMock: func(m *MockService) {
				m.On("CreateReminder", mock.Anything, mock.Anything).
					Return(models.Reminder{}, fmt.Errorf("services.garden.CreateReminder: %w", datestatus.ErrInvalidDate))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid date`,
		},
		{
			name: "растение не найдено",
			body: `{"plantId":"404","task":"Water","dueDate":"2025-08-15"}`,
			setupMock: func(m *MockService) {
				m.On("CreateReminder", mock.Anything, mock.Anything).Return(models.Reminder{}, storage.ErrPlantNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `plant not found`,
		},
		{
			name: "ошибка сервиса",
			body: `{"plantId":"1","task":"Water","dueDate":"2025-08-15"}`,
			setupMock: func(m *MockService) {
				m.On("CreateReminder", mock.Anything, mock.Anything).Return(models.Reminder{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create reminder`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/reminders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
