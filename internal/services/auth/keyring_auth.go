package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keychain, one entry per provider under
// a shared service name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(provider string, token string) error {
	if err := keyring.Set(k.serviceName, NormalizeProvider(provider), token); err != nil {
		return fmt.Errorf("auth: store token: %w", err)
	}
	return nil
}

func (k *KeyringStore) GetToken(provider string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeProvider(provider))
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", fmt.Errorf("auth: read token: %w", err)
}

func (k *KeyringStore) DeleteToken(provider string) error {
	err := keyring.Delete(k.serviceName, NormalizeProvider(provider))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
