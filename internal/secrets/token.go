package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups this app's secrets in the OS keychain.
	KeyringService = "jobdigest"

	keyringAccount = "github-token"
	envToken       = "GITHUB_TOKEN"
)

// GetGitHubToken resolves the token: keychain first, GITHUB_TOKEN env as
// fallback. Missing token is an error the caller treats as fatal before any
// side effect.
func GetGitHubToken() (string, error) {
	if tok, err := keyring.Get(KeyringService, keyringAccount); err == nil && strings.TrimSpace(tok) != "" {
		return tok, nil
	}
	if tok := strings.TrimSpace(os.Getenv(envToken)); tok != "" {
		return tok, nil
	}
	return "", errors.New("GitHub token not found (run `jobdigest token set` or export GITHUB_TOKEN)")
}

func SetGitHubToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteGitHubToken() error {
	return keyring.Delete(KeyringService, keyringAccount)
}
