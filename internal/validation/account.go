// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{3,}$`)

// ValidateUsername checks if a username meets requirements: at least 3
// characters, letters and digits only.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be at least 3 characters and contain only letters and digits")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	return nil
}

// ValidatePassword checks password rules for signup. The username is
// required so a password containing it can be rejected.
func ValidatePassword(password, username string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 4 {
		return fmt.Errorf("password must be at least 4 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	if username != "" && strings.Contains(password, username) {
		return fmt.Errorf("password must not contain the username")
	}
	return nil
}

// ValidateDisplayName checks that a display name is not blank.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("display name is required")
	}
	if len(name) > 60 {
		return fmt.Errorf("display name must not exceed 60 characters")
	}
	return nil
}
