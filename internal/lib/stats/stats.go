// Package stats считает сводные показатели для панели администратора
// и дашборда пользователя. Все функции чистые и детерминированные при заданном now.
package stats

import (
	"time"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

// Stats сводка для администратора.
type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	ActiveUsers       int `json:"activeUsers"`
	NewUsersThisMonth int `json:"newUsersThisMonth"`
	NewFeedback       int `json:"feedbackCount"`
	TotalPlants       int `json:"totalPlants"`
	CompletionRate    int `json:"completionRate"`
}

// Calculate считает показатели по пользователям и отзывам.
// Новые пользователи считаются за календарный месяц и год now;
// записи с неразборчивой датой регистрации пропускаются.
func Calculate(users []models.AdminUser, feedback []models.Feedback, now time.Time) Stats {
	var s Stats
	s.TotalUsers = len(users)
	year, month, _ := now.Date()
	for _, u := range users {
		if u.Status == models.UserActive {
			s.ActiveUsers++
		}
		joined, err := datestatus.ParseDate(u.JoinDate)
		if err != nil {
			continue
		}
		if y, m, _ := joined.Date(); y == year && m == month {
			s.NewUsersThisMonth++
		}
	}
	for _, f := range feedback {
		if f.Status == models.FeedbackNew {
			s.NewFeedback++
		}
	}
	return s
}

// CalculateGarden дополняет s числом растений и долей выполненных напоминаний в процентах.
func CalculateGarden(s Stats, plants []models.Plant, reminders []models.Reminder) Stats {
	s.TotalPlants = len(plants)
	s.CompletionRate = 0
	if len(reminders) == 0 {
		return s
	}
	completed := 0
	for _, r := range reminders {
		if r.Status == models.ReminderCompleted {
			completed++
		}
	}
	s.CompletionRate = completed * 100 / len(reminders)
	return s
}

// Summary сводка напоминаний для дашборда.
type Summary struct {
	Pending        int `json:"pending"`
	CompletedToday int `json:"completedToday"`
	Overdue        int `json:"overdue"`
	DueToday       int `json:"dueToday"`
}

// ReminderSummary считает невыполненные, просроченные, на сегодня и выполненные сегодня.
// Напоминания с неразборчивой датой учитываются только в Pending.
func ReminderSummary(reminders []models.Reminder, now time.Time) Summary {
	var s Summary
	for _, r := range reminders {
		days, err := datestatus.DaysUntilDate(r.DueDate, now)
		if r.Status == models.ReminderCompleted {
			if err == nil && days == 0 {
				s.CompletedToday++
			}
			continue
		}
		s.Pending++
		if err != nil {
			continue
		}
		switch datestatus.Classify(days, string(r.Status)) {
		case datestatus.Overdue:
			s.Overdue++
		case datestatus.DueToday:
			s.DueToday++
		}
	}
	return s
}
