// Package config resolves where the service under test lives and how the runner behaves.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
)

// ErrKeyNotFound is returned by ResolveBaseURL when the env file has no entry for the key.
var ErrKeyNotFound = errors.New("key not found")

// ResolveBaseURL reads a dotenv file, takes the value for key, and appends suffix to it.
// The value must be an absolute http or https URL. If the key is defined more than once,
// the last definition wins.
func ResolveBaseURL(path, key, suffix string) (string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to read env file: %w", err)
	}
	raw, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%s in %s: %w", key, path, ErrKeyNotFound)
	}
	if raw == "" {
		return "", fmt.Errorf("%s in %s is empty", key, path)
	}
	return JoinBaseURL(raw, suffix)
}

// JoinBaseURL validates base and appends suffix, without doubling the slash between them.
func JoinBaseURL(base, suffix string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", base)
	}
	return strings.TrimRight(base, "/") + suffix, nil
}
