package read

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

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetPlant(ctx context.Context, id string) (models.PlantView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.PlantView), args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение растения",
			url:  "/plants/1",
			setupMock: func(m *MockService) {
				view := models.PlantView{
					Plant: models.Plant{ID: "1", Name: "Fiddle Leaf Fig", NextWatering: "2025-08-08"},
					Watering: &models.WateringStatus{
						DaysUntil: 0,
						Status:    datestatus.DueToday,
						Label:     "Due today",
					},
				}
				m.On("GetPlant", mock.Anything, "1").Return(view, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"due_today"`,
		},
		{
			name:           "пустой id",
			url:            "/plants/",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name: "растение не найдено",
			url:  "/plants/404",
			setupMock: func(m *MockService) {
				m.On("GetPlant", mock.Anything, "404").
					Return(models.PlantView{}, fmt.Errorf("storage.memory.ReadPlant: %w", storage.ErrPlantNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"plant not found"}`,
		},
		{
			name: "ошибка сервиса",
			url:  "/plants/777",
			setupMock: func(m *MockService) {
				m.On("GetPlant", mock.Anything, "777").Return(models.PlantView{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read plant"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/plants/"))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
