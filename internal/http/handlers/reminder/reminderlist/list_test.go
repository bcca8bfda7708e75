package reminderlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/lib/stats"
	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/services/garden"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListReminders(ctx context.Context, query, status string) (garden.ReminderList, error) {
	args := m.Called(ctx, query, status)
	return args.Get(0).(garden.ReminderList), args.Error(1)
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "фильтр по статусу и поиску",
			url:  "/reminders?q=fig&status=pending",
			setupMock: func(m *MockService) {
				m.On("ListReminders", mock.Anything, "fig", "pending").Return(garden.ReminderList{
					Reminders: []models.ReminderView{{
						Reminder:  models.Reminder{ID: "1", PlantName: "Fiddle Leaf Fig", Task: "Water", DueDate: "2025-08-08", Status: models.ReminderPending},
						DaysUntil: 0,
						DueStatus: datestatus.DueToday,
						Label:     "Due today",
					}},
					Summary: stats.Summary{Pending: 1, DueToday: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"dueStatus":"due_today"`, `"summary":{"pending":1,"completedToday":0,"overdue":0,"dueToday":1}`},
		},
		{
			name: "без параметров",
			url:  "/reminders",
			setupMock: func(m *MockService) {
				m.On("ListReminders", mock.Anything, "", "").Return(garden.ReminderList{Reminders: []models.ReminderView{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"reminders":[]`},
		},
		{
			name: "ошибка сервиса",
			url:  "/reminders",
			setupMock: func(m *MockService) {
				m.On("ListReminders", mock.Anything, "", "").Return(garden.ReminderList{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`{"status":"Error","error":"failed to list reminders"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			w := httptest.NewRecorder()
			New(sl.Discard(), mockService).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			mockService.AssertExpectations(t)
		})
	}
}
