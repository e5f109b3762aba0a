// Package auth stores the translation API key in the OS keychain and falls
// back to the environment and an interactive prompt.
package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName = "kinosub"
	account     = "gemini-api-key"
	envVar      = "GEMINI_API_KEY"
)

// GetKey retrieves the API key, preferring the keychain over the environment.
// The second return value names the source for logging.
func GetKey() (string, string) {
	key, err := keyring.Get(serviceName, account)
	if err == nil && strings.TrimSpace(key) != "" {
		return strings.TrimSpace(key), "Keychain"
	}
	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		return key, "Environment"
	}
	return "", ""
}

// SaveKey saves the key to the OS keychain.
func SaveKey(key string) error {
	return keyring.Set(serviceName, account, strings.TrimSpace(key))
}

// DeleteKey removes the key from the OS keychain.
func DeleteKey() error {
	return keyring.Delete(serviceName, account)
}

// HasKeychainKey reports whether a key exists in the keychain.
func HasKeychainKey() bool {
	key, err := keyring.Get(serviceName, account)
	return err == nil && strings.TrimSpace(key) != ""
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(raw)), nil
}
