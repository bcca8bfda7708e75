package fertilizer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) AddFertilizerRecord(ctx context.Context, id string, req models.DummyFertilizerRecord) (models.Plant, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.Plant), args.Error(1)
}

func TestFertilizerHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "новая подкормка",
			id:   "2",
			body: `{"date":"2025-08-01","type":"Cactus mix","quantity":"5ml"}`,
			setupMock: func(m *MockService) {
				req := models.DummyFertilizerRecord{Date: "2025-08-01", Type: "Cactus mix", Quantity: "5ml"}
				m.On("AddFertilizerRecord", mock.Anything, "2", req).Return(models.Plant{
					ID:                "2",
					FertilizerRecords: []models.FertilizerRecord{{Date: "2025-08-01", Type: "Cactus mix", Quantity: "5ml"}},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"quantity":"5ml"`,
		},
		{
			name:           "нет типа и количества",
			id:             "2",
			body:           `{"notes":"spring"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Type is a required field, field Quantity is a required field`,
		},
		{
			name: "растение не найдено",
			id:   "404",
			body: `{"type":"Liquid","quantity":"10ml"}`,
			setupMock: func(m *MockService) {
				m.On("AddFertilizerRecord", mock.Anything, "404", mock.Anything).Return(models.Plant{}, storage.ErrPlantNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"plant not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/plants/"+tt.id+"/fertilizer", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			New(sl.Discard(), mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
