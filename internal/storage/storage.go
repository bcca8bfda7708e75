// Package storage содержит общие ошибки слоя хранения.
package storage

import "errors"

var (
	ErrPlantNotFound    = errors.New("plant not found")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
)
