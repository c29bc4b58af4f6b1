package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind различает access и refresh токены одной пары
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims представляет JWT claims с email пользователя и видом токена
type Claims struct {
	Email string    `json:"email"`
	Kind  TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// Manager управляет выпуском и валидацией пары access/refresh токенов
type Manager struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager создает новый JWT manager
func NewManager(secretKey string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair выпускает пару access/refresh токенов для пользователя
func (m *Manager) GeneratePair(email string) (access, refresh string, err error) {
	access, err = m.generate(email, KindAccess, m.accessTTL)
	if err != nil {
		return "", "", err
	}

	refresh, err = m.generate(email, KindRefresh, m.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (m *Manager) generate(email string, kind TokenKind, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return signedToken, nil
}

// Validate валидирует токен ожидаемого вида и возвращает email пользователя
func (m *Manager) Validate(tokenString string, kind TokenKind) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	if claims.Kind != kind {
		return "", fmt.Errorf("token kind mismatch: want %s, got %s", kind, claims.Kind)
	}

	return claims.Email, nil
}
