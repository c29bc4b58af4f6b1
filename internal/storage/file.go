package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/avc/stellar-burger-store/internal/domain"
)

// FileStore хранит долгоживущий токен в файле, переживая перезапуск
// процесса, — аналог localStorage браузера.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore создает хранилище поверх файла по заданному пути
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get возвращает сохраненный токен или domain.ErrTokenNotFound
func (s *FileStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrTokenNotFound
		}
		return "", fmt.Errorf("storage: failed to read token file %q: %w", s.path, err)
	}

	if len(data) == 0 {
		return "", domain.ErrTokenNotFound
	}
	return string(data), nil
}

// Set сохраняет токен, создавая директории при необходимости
func (s *FileStore) Set(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("storage: failed to create token dir %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("storage: failed to write token file %q: %w", s.path, err)
	}
	return nil
}

// Delete удаляет файл токена; отсутствие файла не считается ошибкой
func (s *FileStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: failed to remove token file %q: %w", s.path, err)
	}
	return nil
}
