package userstatus

import (
	"context"
	"errors"
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

func (m *MockService) SetUserStatus(ctx context.Context, id string, status models.UserStatus) (models.AdminUser, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.AdminUser), args.Error(1)
}

func TestStatusHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "деактивация",
			id:   "1",
			body: `{"status":"inactive"}`,
			setupMock: func(m *MockService) {
				m.On("SetUserStatus", mock.Anything, "1", models.UserInactive).Return(models.AdminUser{
					User:   models.User{ID: "1", Name: "John Doe"},
					Status: models.UserInactive,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"inactive"`,
		},
		{
			name:           "неизвестный статус",
			id:             "1",
			body:           `{"status":"banned"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Status must be one of: active inactive`,
		},
		{
			name:           "некорректный JSON",
			id:             "1",
			body:           `{`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "пользователь не найден",
			id:   "404",
			body: `{"status":"active"}`,
			setupMock: func(m *MockService) {
				m.On("SetUserStatus", mock.Anything, "404", models.UserActive).Return(models.AdminUser{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name: "ошибка сервиса",
			id:   "1",
			body: `{"status":"active"}`,
			setupMock: func(m *MockService) {
				m.On("SetUserStatus", mock.Anything, "1", models.UserActive).Return(models.AdminUser{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not change user status`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+tt.id+"/status", strings.NewReader(tt.body))
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
