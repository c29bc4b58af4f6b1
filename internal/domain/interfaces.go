package domain

import "context"

// APIClient определяет операции удаленного burger API. Ядро состояния зависит
// только от формы ответов, а не от транспорта.
type APIClient interface {
	FetchIngredients(ctx context.Context) ([]Ingredient, error)
	FetchFeeds(ctx context.Context) (*FeedResponse, error)
	FetchOrderByNumber(ctx context.Context, number int) (*OrdersResponse, error)
	FetchOrders(ctx context.Context) ([]Order, error)
	FetchUser(ctx context.Context) (*UserResponse, error)
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Logout(ctx context.Context) (*LogoutResponse, error)
	UpdateUser(ctx context.Context, patch UserPatch) (*UserResponse, error)
	SubmitOrder(ctx context.Context, ingredientIDs []string) (*OrderResponse, error)
}

// TokenStore определяет методы непрозрачного строкового хранилища токена.
// Get возвращает ErrTokenNotFound для отсутствующего или истекшего значения.
type TokenStore interface {
	Get() (string, error)
	Set(value string) error
	Delete() error
}
