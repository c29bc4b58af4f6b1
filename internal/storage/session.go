package storage

import "github.com/avc/stellar-burger-store/internal/domain"

// Session объединяет два скоупа хранения токенов: короткоживущий access
// токен (cookie-скоуп) и долгоживущий refresh токен (локальный скоуп).
type Session struct {
	Access  domain.TokenStore
	Refresh domain.TokenStore
}

// NewSession создает сессию поверх заданных хранилищ
func NewSession(access, refresh domain.TokenStore) *Session {
	return &Session{Access: access, Refresh: refresh}
}

// SaveTokens сохраняет пару токенов в соответствующие скоупы
func (s *Session) SaveTokens(access, refresh string) error {
	if err := s.Access.Set(access); err != nil {
		return err
	}
	return s.Refresh.Set(refresh)
}

// Purge удаляет оба токена; первая ошибка возвращается,
// но удаление второго скоупа выполняется в любом случае
func (s *Session) Purge() error {
	accessErr := s.Access.Delete()
	refreshErr := s.Refresh.Delete()
	if accessErr != nil {
		return accessErr
	}
	return refreshErr
}
