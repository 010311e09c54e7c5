package session

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "jobdesk"
	keyringAccount = "jobdesk:api-token"
)

func keyringGetToken() (string, error) {
	tok, err := keyring.Get(KeyringService, keyringAccount)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tok) == "" {
		return "", keyring.ErrNotFound
	}
	return tok, nil
}

// keychainUnavailable reports whether a keyring error means the backing
// service itself is unusable (no dbus, locked keychain), as opposed to a
// working keychain that simply has no stored token.
func keychainUnavailable(err error) bool {
	return err != nil && !errors.Is(err, keyring.ErrNotFound)
}

func keyringSetToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func keyringDeleteToken() error {
	err := keyring.Delete(KeyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
