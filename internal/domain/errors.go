package domain

import "errors"

// Ошибки аутентификации
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Ошибки заказов
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order has no ingredients")
	ErrIncompleteBurger = errors.New("burger needs a bun and at least one filling")
)

// Ошибки хранилища токенов
var (
	ErrTokenNotFound = errors.New("token not found")
)
