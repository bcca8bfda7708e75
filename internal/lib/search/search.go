// Package search реализует поиск по подстроке без учёта регистра
// по спискам растений, напоминаний, пользователей и отзывов.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/magabrotheeeer/leaflog/internal/models"
)

// Search возвращает записи, у которых хотя бы одно из полей fields содержит query
// без учёта регистра. Запрос не обрезается: пробелы входят в подстроку.
// Пустой запрос оставляет все записи. Порядок сохраняется,
// входной срез не изменяется, результат всегда новый срез.
func Search[T any](records []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || matches(fields(r), q) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// PlantFields имя и вид растения.
func PlantFields(p models.Plant) []string {
	return []string{p.Name, p.Type}
}

// ReminderFields имя растения и задача.
func ReminderFields(r models.Reminder) []string {
	return []string{r.PlantName, r.Task}
}

// UserFields имя и почта.
func UserFields(u models.AdminUser) []string {
	return []string{u.Name, u.Email}
}

// FeedbackFields автор и текст отзыва.
func FeedbackFields(f models.Feedback) []string {
	return []string{f.UserName, f.Message}
}

// Plants ищет растения по имени и виду.
func Plants(plants []models.Plant, query string) []models.Plant {
	return Search(plants, query, PlantFields)
}

// Users ищет пользователей по имени и почте.
func Users(users []models.AdminUser, query string) []models.AdminUser {
	return Search(users, query, UserFields)
}

// Feedback ищет отзывы по автору и тексту.
func Feedback(feedback []models.Feedback, query string) []models.Feedback {
	return Search(feedback, query, FeedbackFields)
}

// StatusFilter фильтр напоминаний по статусу.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter возвращает фильтр по строке; неизвестное и пустое значение дают StatusAll.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending
	case StatusCompleted:
		return StatusCompleted
	default:
		return StatusAll
	}
}

// Reminders ищет напоминания по имени растения и задаче и оставляет
// только подходящие под фильтр статуса.
func Reminders(reminders []models.Reminder, query string, status StatusFilter) []models.Reminder {
	found := Search(reminders, query, ReminderFields)
	if status == StatusAll || status == "" {
		return found
	}
	return slices.DeleteFunc(found, func(r models.Reminder) bool {
		return string(r.Status) != string(status)
	})
}

// SortByDue упорядочивает напоминания: сначала невыполненные по возрастанию даты,
// затем выполненные по убыванию. Сортировка стабильная, вход не изменяется.
// Даты в формате ISO сравниваются как строки.
func SortByDue(reminders []models.Reminder) []models.Reminder {
	out := slices.Clone(reminders)
	slices.SortStableFunc(out, func(a, b models.Reminder) int {
		ac, bc := a.Status == models.ReminderCompleted, b.Status == models.ReminderCompleted
		switch {
		case ac != bc:
			if ac {
				return 1
			}
			return -1
		case ac:
			return cmp.Compare(b.DueDate, a.DueDate)
		default:
			return cmp.Compare(a.DueDate, b.DueDate)
		}
	})
	return out
}
