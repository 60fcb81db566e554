// Package auth stores provider API tokens used by remote inventory sources.
package auth

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/util"
)

const ServiceName = "assetctl"

// ProviderHetzner is the Hetzner Cloud inventory source.
const ProviderHetzner = "hetzner"

var (
	ErrTokenNotFound   = errors.New("auth token not found")
	ErrUnknownProvider = errors.New("unknown provider")
)

// envTokens maps providers to environment variables that override the
// stored token.
var envTokens = map[string]string{
	ProviderHetzner: "HCLOUD_TOKEN",
}

type Store interface {
	SetToken(provider string, token string) error
	GetToken(provider string) (string, error)
	DeleteToken(provider string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// Providers returns the providers a token can be stored for.
func Providers() []string {
	names := make([]string, 0, len(envTokens))
	for name := range envTokens {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NormalizeProvider normalizes a provider name for consistent key lookup.
func NormalizeProvider(provider string) string {
	return util.NormalizeKey(provider)
}

// ValidateProvider returns the normalized provider name, or
// ErrUnknownProvider.
func ValidateProvider(provider string) (string, error) {
	name := NormalizeProvider(provider)
	if _, ok := envTokens[name]; !ok {
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownProvider, provider, strings.Join(Providers(), ", "))
	}
	return name, nil
}

// EnvVar returns the environment variable that overrides the stored token
// for provider, or "" if there is none.
func EnvVar(provider string) string {
	return envTokens[NormalizeProvider(provider)]
}

// ResolveToken returns the token for provider, preferring the provider's
// environment variable over the store.
func ResolveToken(store Store, provider string) (string, error) {
	name := NormalizeProvider(provider)
	if env := EnvVar(name); env != "" {
		if token := strings.TrimSpace(os.Getenv(env)); token != "" {
			return token, nil
		}
	}
	token, err := store.GetToken(name)
	if err != nil {
		return "", fmt.Errorf("auth: %s token: %w", name, err)
	}
	return token, nil
}
