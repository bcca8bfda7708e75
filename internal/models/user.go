package models

// User профиль пользователя.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UserStatus статус учётной записи в админке.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// AdminUser пользователь, как его видит администратор.
type AdminUser struct {
	User
	Status   UserStatus `json:"status"`
	JoinDate string     `json:"joinDate"`
}

// DummyUserStatus запрос на смену статуса пользователя.
type DummyUserStatus struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
