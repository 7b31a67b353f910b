package session_adapter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	session_adapter "admin-console-service/internal/adapters/session"
	"admin-console-service/internal/core/domain"
)

func TestFileSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store, err := session_adapter.NewFileSessionStore(path)
	require.NoError(t, err)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())

	admin := &domain.AdminUser{ID: 1, Name: "Admin", Email: "admin@example.com", Role: "ADMIN"}
	require.NoError(t, store.SetSession(admin, "jwt-token"))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "jwt-token", store.Token())
	require.NotNil(t, store.CurrentUser())
	assert.Equal(t, "admin@example.com", store.CurrentUser().Email)

	// Токен переживает перезапуск: новое хранилище читает тот же файл
	reopened, err := session_adapter.NewFileSessionStore(path)
	require.NoError(t, err)
	assert.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "jwt-token", reopened.Token())
	require.NotNil(t, reopened.CurrentUser())
	assert.Equal(t, int64(1), reopened.CurrentUser().ID)
}

func TestFileSessionStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := session_adapter.NewFileSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetSession(&domain.AdminUser{ID: 1}, "jwt-token"))

	require.NoError(t, store.ClearSession())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.CurrentUser())

	// Файл удален с диска
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Повторная очистка без файла не ошибка
	assert.NoError(t, store.ClearSession())
}

func TestFileSessionStoreCorruptFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	// Битый файл не блокирует запуск, сессии просто нет
	store, err := session_adapter.NewFileSessionStore(path)
	require.NoError(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestFileSessionStoreRequiresPath(t *testing.T) {
	_, err := session_adapter.NewFileSessionStore("")
	assert.Error(t, err)
}

func TestFileSessionStoreCurrentUserIsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := session_adapter.NewFileSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetSession(&domain.AdminUser{ID: 1, Name: "Admin"}, "jwt-token"))

	first := store.CurrentUser()
	first.Name = "Mutated"
	assert.Equal(t, "Admin", store.CurrentUser().Name)
}
