package feedbacklist

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

func (m *MockService) ListFeedback(ctx context.Context, query string) ([]models.Feedback, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).([]models.Feedback)
	return res, args.Error(1)
}

func TestListHandler(t *testing.T) {
	t.Run("поиск по тексту", func(t *testing.T) {
		m := new(MockService)
		m.On("ListFeedback", mock.Anything, "reminder").Return([]models.Feedback{{
			ID:       "4",
			UserName: "Nature Lover",
			Message:  "Great app! The reminder system is very helpful.",
			Status:   models.FeedbackResponded,
		}}, nil)

		w := httptest.NewRecorder()
		New(sl.Discard(), m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/feedback?q=reminder", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"list_count":1`)
		assert.Contains(t, w.Body.String(), `"userName":"Nature Lover"`)
		m.AssertExpectations(t)
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		m := new(MockService)
		m.On("ListFeedback", mock.Anything, "").Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		New(sl.Discard(), m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/feedback", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `failed to list feedback`)
	})
}
