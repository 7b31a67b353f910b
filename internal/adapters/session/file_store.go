package session_adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"admin-console-service/internal/core/domain"
)

// sessionFile - формат файла сессии на диске.
type sessionFile struct {
	Token string `json:"token"`
	User  *struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user,omitempty"`
}

// FileSessionStore хранит токен и личность администратора в JSON-файле.
// Это аналог localStorage браузерной консоли: одна запись под
// фиксированным именем, удаляется при выходе. Никакой другой
// долговременной памяти у сервиса нет.
type FileSessionStore struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *domain.AdminUser
}

// NewFileSessionStore создает хранилище и подтягивает сессию с диска,
// если файл уже существует (переживший перезапуск токен).
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}

	store := &FileSessionStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var persisted sessionFile
	if err := json.Unmarshal(data, &persisted); err != nil {
		// Битый файл не должен блокировать запуск: считаем, что сессии нет.
		return store, nil
	}

	store.token = persisted.Token
	if persisted.User != nil {
		store.user = &domain.AdminUser{
			ID:    persisted.User.ID,
			Name:  persisted.User.Name,
			Email: persisted.User.Email,
			Role:  persisted.User.Role,
		}
	}
	return store, nil
}

// SetSession сохраняет личность и токен и пишет их на диск.
func (s *FileSessionStore) SetSession(user *domain.AdminUser, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := sessionFile{Token: token}
	if user != nil {
		persisted.User = &struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	}

	data, err := json.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.token = token
	s.user = user
	return nil
}

// ClearSession удаляет сессию из памяти и с диска.
func (s *FileSessionStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// IsAuthenticated возвращает true, если токен сейчас удерживается.
func (s *FileSessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token возвращает текущий токен.
func (s *FileSessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser возвращает личность администратора или nil.
func (s *FileSessionStore) CurrentUser() *domain.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}
