package auth

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringStore_Roundtrip(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("")

	if _, err := store.GetToken("hetzner"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound before set, got %v", err)
	}

	if err := store.SetToken(" Hetzner ", "secret"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}
	got, err := store.GetToken("hetzner")
	if err != nil {
		t.Fatalf("GetToken() error: %v", err)
	}
	if got != "secret" {
		t.Errorf("GetToken() = %q, want secret", got)
	}

	if err := store.DeleteToken("hetzner"); err != nil {
		t.Fatalf("DeleteToken() error: %v", err)
	}
	if err := store.DeleteToken("hetzner"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound after delete, got %v", err)
	}
}
