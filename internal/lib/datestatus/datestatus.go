// Package datestatus считает разницу в днях между календарными датами и по ней
// определяет статус напоминания или полива: просрочено, сегодня, скоро, позже.
package datestatus

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout формат дат во всех моделях: ISO-дата без времени.
const Layout = "2006-01-02"

// DueSoonDays граница статуса DueSoon включительно.
const DueSoonDays = 2

// ErrInvalidDate возвращается, если строку нельзя разобрать как дату Layout.
var ErrInvalidDate = errors.New("invalid date")

// Status категория срока.
type Status string

const (
	Completed Status = "completed"
	Overdue   Status = "overdue"
	DueToday  Status = "due_today"
	DueSoon   Status = "due_soon"
	Upcoming  Status = "upcoming"
)

// ParseDate разбирает дату в формате Layout в локальной зоне.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Format возвращает календарную дату t в формате Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today отбрасывает время суток у now.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DaysUntil возвращает количество календарных дней от reference до target.
// Время суток у обеих дат отбрасывается, поэтому 23:59 и 00:01 следующего дня
// дают ровно 1. Считается по гражданским датам в UTC, переход на летнее время
// на результат не влияет. Разница считается в секундах Unix, а не через
// time.Duration, которая насыщается примерно на 292 годах.
func DaysUntil(target, reference time.Time) int {
	return int((civil(target).Unix() - civil(reference).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// DaysUntilDate то же, что DaysUntil, но для строки в формате Layout.
func DaysUntilDate(target string, reference time.Time) (int, error) {
	t, err := ParseDate(target)
	if err != nil {
		return 0, err
	}
	return DaysUntil(t, reference), nil
}

// Classify переводит разницу в днях в статус. Выполненное напоминание
// всегда Completed, независимо от даты.
func Classify(days int, current string) Status {
	if current == string(Completed) {
		return Completed
	}
	switch {
	case days < 0:
		return Overdue
	case days == 0:
		return DueToday
	case days <= DueSoonDays:
		return DueSoon
	default:
		return Upcoming
	}
}

// Describe подпись для бейджа.
func Describe(days int) string {
	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due in 1 day"
	default:
		return fmt.Sprintf("Due in %d days", days)
	}
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
