package store

import (
	"fmt"
	"sync"

	"github.com/avc/stellar-burger-store/internal/storage"
	"go.uber.org/zap"
)

// Store владеет состоянием приложения и применяет действия строго
// последовательно: никакие два применения не перекрываются. Побочные
// эффекты сохранения сессии выполняются в том же шаге применения,
// что и породившее их действие.
type Store struct {
	mu          sync.Mutex
	state       AppState
	session     *storage.Session
	logger      *zap.Logger
	subscribers []func(AppState)
}

// New создает хранилище с начальным состоянием
func New(session *storage.Session, logger *zap.Logger) *Store {
	return &Store{
		state:   InitialState(),
		session: session,
		logger:  logger,
	}
}

// Dispatch применяет действие к текущему состоянию. Вызов безопасен из
// любой горутины; применения сериализуются.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()

	s.applyEffects(action)
	s.state = Reduce(s.state, action)

	next := s.state
	subscribers := make([]func(AppState), len(s.subscribers))
	copy(subscribers, s.subscribers)

	s.mu.Unlock()

	s.logger.Debug("action applied", zap.String("action", fmt.Sprintf("%T", action)))

	for _, fn := range subscribers {
		fn(next)
	}
}

// State возвращает текущий снимок состояния. Снимок принадлежит
// вызывающему по значению; содержимое срезов изменять нельзя.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe регистрирует наблюдателя, получающего каждый новый снимок.
// Наблюдатель вызывается вне внутренней блокировки и может диспетчеризовать
// новые действия.
func (s *Store) Subscribe(fn func(AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// applyEffects выполняет эффекты сохранения сессии для действий,
// затрагивающих токены. Эффекты выполняются по принципу at-least-once:
// ошибка записи логируется, но не блокирует переход состояния.
func (s *Store) applyEffects(action Action) {
	if s.session == nil {
		return
	}

	switch a := action.(type) {
	case LoginFulfilled:
		s.persistTokens(a.Response.AccessToken, a.Response.RefreshToken)

	case RegisterFulfilled:
		s.persistTokens(a.Response.AccessToken, a.Response.RefreshToken)

	case ProfileRejected:
		// Потеря сессии: чистим оба токена
		s.purgeTokens()

	case LogoutFulfilled:
		if a.Response.Success {
			s.purgeTokens()
		}
	}
}

func (s *Store) persistTokens(access, refresh string) {
	if err := s.session.SaveTokens(access, refresh); err != nil {
		s.logger.Error("failed to persist session tokens", zap.Error(err))
	}
}

func (s *Store) purgeTokens() {
	if err := s.session.Purge(); err != nil {
		s.logger.Error("failed to purge session tokens", zap.Error(err))
	}
}
