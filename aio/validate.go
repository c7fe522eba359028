package aio

import (
	"fmt"
	"regexp"
)

var (
	// usernameRegex validates account usernames: 1-30 characters, letters,
	// digits, dash, underscore.
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,30}$`)

	// keyRegex validates feed/group keys and data-point ids. Keys are
	// lowercase on the service side but mixed case is accepted here and
	// normalized remotely. Path-reserved characters are rejected so a key can
	// never span URL segments.
	keyRegex = regexp.MustCompile(`^[A-Za-z0-9_\-.]+$`)
)

// ValidateUsername validates an account username.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 1-30 characters containing only letters, digits, dash, and underscore")
	}
	return nil
}

// ValidateKey validates a feed key, group key, or data-point id before it is
// embedded as a URL path segment.
func ValidateKey(key, fieldName string) error {
	if key == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if !keyRegex.MatchString(key) {
		return fmt.Errorf("%s contains invalid characters; allowed: letters, digits, dash, underscore, dot", fieldName)
	}
	return nil
}
