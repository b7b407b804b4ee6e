package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests exercise the env fallback path only; opening a real OS
// keychain is out of scope for unit tests.

func TestKeyringService_EnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-123")
	service := NewKeyringService()

	key, err := service.GetApiKey("gemini")
	assert.NoError(t, err)
	assert.Equal(t, "gem-123", key)
}

func TestKeyringService_LegacyCatchAllEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-456")
	service := NewKeyringService()

	key, err := service.GetApiKey("gemini")
	assert.NoError(t, err)
	assert.Equal(t, "legacy-456", key)
}

func TestKeyringService_MissingKeyIsNotAnError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	service := NewKeyringService()

	key, err := service.GetApiKey("openai")
	assert.NoError(t, err)
	assert.Empty(t, key)
}

func TestKeyringService_ProviderRequired(t *testing.T) {
	service := NewKeyringService()

	_, err := service.GetApiKey("")
	assert.Error(t, err)
	assert.Error(t, service.StoreApiKey("", "key"))
	assert.Error(t, service.DeleteApiKey(" "))
}

func TestKeyringService_StoreRequiresInitializedRing(t *testing.T) {
	service := NewKeyringService()
	assert.Error(t, service.StoreApiKey("gemini", "value"))
}
