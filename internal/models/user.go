package models

// User — владелец ресурсов (resource owner), зарегистрированный в сервисе.
//
// Пароль хранится только в виде bcrypt-хэша; исходное значение
// нигде не сохраняется и не логируется.
type User struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
}
