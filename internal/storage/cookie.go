package storage

import (
	"sync"
	"time"

	"github.com/avc/stellar-burger-store/internal/domain"
)

// CookieStore хранит короткоживущий токен в памяти с истечением по TTL,
// повторяя семантику cookie браузера: значение с истекшим сроком для
// читателя неотличимо от отсутствующего.
type CookieStore struct {
	mu        sync.Mutex
	value     string
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewCookieStore создает новое хранилище с заданным TTL значения
func NewCookieStore(ttl time.Duration) *CookieStore {
	return &CookieStore{
		ttl: ttl,
		now: time.Now,
	}
}

// Get возвращает сохраненный токен или domain.ErrTokenNotFound,
// если токен не установлен либо истек
func (s *CookieStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == "" || s.now().After(s.expiresAt) {
		return "", domain.ErrTokenNotFound
	}
	return s.value, nil
}

// Set сохраняет токен, сбрасывая срок его жизни
func (s *CookieStore) Set(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.expiresAt = s.now().Add(s.ttl)
	return nil
}

// Delete удаляет токен
func (s *CookieStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = ""
	s.expiresAt = time.Time{}
	return nil
}
