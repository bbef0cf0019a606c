package repository

import "errors"

// Sentinel errors the handler layer maps onto HTTP statuses and
// flash messages.
var (
	ErrPostNotFound       = errors.New("пост не найден")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrForbidden          = errors.New("нет прав на это действие")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrTitleRequired      = errors.New("заголовок обязателен")
	ErrUsernameTaken      = errors.New("имя пользователя уже существует")
	ErrEmailTaken         = errors.New("email уже существует")
	ErrPasswordMismatch   = errors.New("пароли не совпадают")
	ErrImageNotFound      = errors.New("изображение не найдено")
)
