package models

// User представляет зарегистрированного пользователя системы.
// Пароль после сохранения существует только в виде bcrypt-хэша.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Username     string // Имя пользователя (уникальное)
	PasswordHash string // Хэш пароля пользователя
}
