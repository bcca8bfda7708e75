package userlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListUsers(ctx context.Context, query string) ([]models.AdminUser, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).([]models.AdminUser)
	return res, args.Error(1)
}

func TestListHandler(t *testing.T) {
	t.Run("поиск по почте", func(t *testing.T) {
		m := new(MockService)
		m.On("ListUsers", mock.Anything, "jane@").Return([]models.AdminUser{{
			User:     models.User{ID: "2", Name: "Jane Smith", Email: "jane@example.com"},
			Status:   models.UserActive,
			JoinDate: "2025-02-10",
		}}, nil)

		w := httptest.NewRecorder()
		New(sl.Discard(), m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?q=jane@", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"list_count":1`)
		assert.Contains(t, w.Body.String(), `"email":"jane@example.com"`)
		m.AssertExpectations(t)
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		m := new(MockService)
		m.On("ListUsers", mock.Anything, "").Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		New(sl.Discard(), m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `failed to list users`)
	})
}
