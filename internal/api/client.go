package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc/stellar-burger-store/internal/domain"
	"github.com/avc/stellar-burger-store/internal/storage"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Client реализует domain.APIClient поверх HTTP burger API.
// Авторизованные запросы подписываются access токеном из сессии;
// на 401 клиент один раз обновляет пару токенов и повторяет запрос.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	session    *storage.Session
	logger     *zap.Logger
}

// Config содержит настройки HTTP клиента
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
}

// NewClient создает новый API клиент
func NewClient(cfg Config, session *storage.Session, logger *zap.Logger) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.RetryMax
	httpClient.HTTPClient.Timeout = cfg.Timeout
	httpClient.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		session:    session,
		logger:     logger,
	}
}

// apiError представляет ошибку, сообщенную сервером
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return e.Message
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ingredientsEnvelope struct {
	Success bool                `json:"success"`
	Data    []domain.Ingredient `json:"data"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type orderRequest struct {
	Ingredients []string `json:"ingredients"`
}

// FetchIngredients загружает каталог ингредиентов
func (c *Client) FetchIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	var envelope ingredientsEnvelope
	if err := c.do(ctx, http.MethodGet, "/ingredients", nil, &envelope, false); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// FetchFeeds загружает публичную ленту заказов
func (c *Client) FetchFeeds(ctx context.Context) (*domain.FeedResponse, error) {
	var resp domain.FeedResponse
	if err := c.do(ctx, http.MethodGet, "/orders/all", nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchOrderByNumber загружает заказ по его номеру
func (c *Client) FetchOrderByNumber(ctx context.Context, number int) (*domain.OrdersResponse, error) {
	var resp domain.OrdersResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", number), nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchOrders загружает заказы текущего пользователя
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var resp domain.OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// FetchUser загружает профиль текущего пользователя
func (c *Client) FetchUser(ctx context.Context) (*domain.UserResponse, error) {
	var resp domain.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout завершает сессию, предъявляя refresh токен
func (c *Client) Logout(ctx context.Context) (*domain.LogoutResponse, error) {
	refresh, err := c.session.Refresh.Get()
	if err != nil {
		return nil, fmt.Errorf("api: no refresh token for logout: %w", err)
	}

	var resp domain.LogoutResponse
	if err := c.do(ctx, http.MethodPost, "/auth/logout", tokenRequest{Token: refresh}, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUser изменяет профиль текущего пользователя
func (c *Client) UpdateUser(ctx context.Context, patch domain.UserPatch) (*domain.UserResponse, error) {
	var resp domain.UserResponse
	if err := c.do(ctx, http.MethodPatch, "/auth/user", patch, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitOrder отправляет заказ; список id имеет вид [булка, начинка..., булка]
func (c *Client) SubmitOrder(ctx context.Context, ingredientIDs []string) (*domain.OrderResponse, error) {
	if len(ingredientIDs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var resp domain.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", orderRequest{Ingredients: ingredientIDs}, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do выполняет запрос и декодирует ответ. Для авторизованных запросов
// ответ 401 приводит к однократному обновлению пары токенов и повтору.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	statusCode, err := c.doOnce(ctx, method, path, body, out, authed)
	if err == nil {
		return nil
	}

	if !authed || statusCode != http.StatusUnauthorized {
		return err
	}

	c.logger.Debug("access token rejected, refreshing", zap.String("path", path))
	if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
		return fmt.Errorf("api: token refresh failed: %w", refreshErr)
	}

	_, err = c.doOnce(ctx, method, path, body, out, authed)
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out any, authed bool) (int, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("api: failed to encode request body: %w", err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return 0, fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, err := c.session.Access.Get()
		if err != nil {
			if !errors.Is(err, domain.ErrTokenNotFound) {
				return 0, fmt.Errorf("api: failed to read access token: %w", err)
			}
			// Нет токена: запрос уйдет без авторизации и вернет 401,
			// после чего сработает обновление через refresh токен
		} else {
			req.Header.Set("Authorization", bearer(token))
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("api: request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return resp.StatusCode, &apiError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("api: failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// refreshTokens обменивает refresh токен на новую пару и сохраняет ее
func (c *Client) refreshTokens(ctx context.Context) error {
	refresh, err := c.session.Refresh.Get()
	if err != nil {
		return fmt.Errorf("no refresh token: %w", err)
	}

	var resp domain.RefreshResponse
	if _, err := c.doOnce(ctx, http.MethodPost, "/auth/token", tokenRequest{Token: refresh}, &resp, false); err != nil {
		return err
	}

	if err := c.session.SaveTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	return nil
}

// bearer нормализует значение заголовка Authorization: сервер выдает
// access токен уже с префиксом "Bearer "
func bearer(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}
