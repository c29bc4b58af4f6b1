package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GeneratePair(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		email     string
	}{
		{
			name:      "Valid pair generation",
			secretKey: "test-secret-key",
			email:     "bob@example.com",
		},
		{
			name:      "Another user",
			secretKey: "another-secret",
			email:     "alice@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, time.Hour, 24*time.Hour)
			access, refresh, err := m.GeneratePair(tt.email)

			require.NoError(t, err)
			assert.NotEmpty(t, access)
			assert.NotEmpty(t, refresh)
			assert.NotEqual(t, access, refresh)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	email := "bob@example.com"

	t.Run("Valid access token", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour, 24*time.Hour)
		access, _, err := m.GeneratePair(email)
		require.NoError(t, err)

		parsed, err := m.Validate(access, KindAccess)
		require.NoError(t, err)
		assert.Equal(t, email, parsed)
	})

	t.Run("Valid refresh token", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour, 24*time.Hour)
		_, refresh, err := m.GeneratePair(email)
		require.NoError(t, err)

		parsed, err := m.Validate(refresh, KindRefresh)
		require.NoError(t, err)
		assert.Equal(t, email, parsed)
	})

	t.Run("Kind mismatch", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour, 24*time.Hour)
		access, refresh, err := m.GeneratePair(email)
		require.NoError(t, err)

		_, err = m.Validate(access, KindRefresh)
		assert.Error(t, err)

		_, err = m.Validate(refresh, KindAccess)
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, time.Hour, 24*time.Hour)
		access, _, err := m1.GeneratePair(email)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", time.Hour, 24*time.Hour)
		_, err = m2.Validate(access, KindAccess)
		assert.Error(t, err)
	})

	t.Run("Malformed token", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour, 24*time.Hour)
		_, err := m.Validate("invalid.token.string", KindAccess)
		assert.Error(t, err)
	})

	t.Run("Empty token", func(t *testing.T) {
		m := NewManager(secretKey, time.Hour, 24*time.Hour)
		_, err := m.Validate("", KindAccess)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Nanosecond, time.Nanosecond)
		access, _, err := m.GeneratePair(email)
		require.NoError(t, err)

		// Ждем, чтобы токен истек
		time.Sleep(time.Millisecond * 10)

		_, err = m.Validate(access, KindAccess)
		assert.Error(t, err)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	// Токен с alg=none не должен проходить валидацию
	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJlbWFpbCI6ImJvYkB4LmNvbSJ9.", KindAccess)
	assert.Error(t, err)
}
