package services

import (
	"errors"
	"os"
	"strings"

	"github.com/99designs/keyring"
)

const keyringServiceName = "knowledgechat"

// envFallbacks maps provider ids to the environment variables consulted when
// the OS keychain has no stored key. API_KEY is the studio's historical
// catch-all for the default provider.
var envFallbacks = map[string][]string{
	"gemini":    {"GEMINI_API_KEY", "API_KEY"},
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
}

type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) Startup() error {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: keyringServiceName,
	})
	if err != nil {
		return err
	}
	s.ring = ring
	return nil
}

func (s *KeyringService) StoreApiKey(provider, apiKey string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return errors.New("API key is empty")
	}
	if s.ring == nil {
		return errors.New("keyring not initialized")
	}
	return s.ring.Set(keyring.Item{
		Key:   provider,
		Data:  []byte(apiKey),
		Label: provider + " API key",
	})
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if strings.TrimSpace(provider) == "" {
		return errors.New("provider is required")
	}
	if s.ring == nil {
		return errors.New("keyring not initialized")
	}
	return s.ring.Remove(provider)
}

// GetApiKey resolves a provider key from the keychain, falling back to the
// provider's environment variables.
func (s *KeyringService) GetApiKey(provider string) (string, error) {
	if strings.TrimSpace(provider) == "" {
		return "", errors.New("provider is required")
	}

	if s.ring != nil {
		item, err := s.ring.Get(provider)
		if err == nil && len(item.Data) > 0 {
			return string(item.Data), nil
		}
		if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			return "", err
		}
	}

	for _, env := range envFallbacks[provider] {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}

	return "", nil
}
