package models

// FeedbackStatus состояние отзыва.
type FeedbackStatus string

const (
	FeedbackNew       FeedbackStatus = "new"
	FeedbackResponded FeedbackStatus = "responded"
)

// Feedback отзыв пользователя.
type Feedback struct {
	ID       string         `json:"id"`
	UserName string         `json:"userName"`
	Email    string         `json:"email"`
	Message  string         `json:"message"`
	Date     string         `json:"date"`
	Status   FeedbackStatus `json:"status"`
}
