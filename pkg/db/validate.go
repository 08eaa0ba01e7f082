package db

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText trims spaces of s, and tells whether s is plain text.
//
// s is plain text when the strict policy of bluemonday keeps it as it is.
// bluemonday escapes entities of text nodes, so they are unescaped before comparing.
func plainText(s string) (string, bool) {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	trimmed := strings.TrimSpace(s)
	return trimmed, html.UnescapeString(textPolicy.Sanitize(trimmed)) == trimmed
}

// ValidateName normalizes a name of a todo list.
//
// # Returns
//
// - string: name without surrounding spaces.
//
// - error: ErrInvalidArgument when name is blank or is not plain text.
func ValidateName(name string) (string, error) {
	n, ok := plainText(name)
	if n == "" {
		return "", fmt.Errorf("%w: list name should not be blank", ErrInvalidArgument)
	}
	if !ok {
		return "", fmt.Errorf("%w: list name should not contain markup: %q", ErrInvalidArgument, n)
	}
	return n, nil
}

// ValidateDescription normalizes a description of a todo.
//
// # Returns
//
// - string: description without surrounding spaces.
//
// - error: ErrInvalidArgument when description is blank or is not plain text.
func ValidateDescription(description string) (string, error) {
	d, ok := plainText(description)
	if d == "" {
		return "", fmt.Errorf("%w: todo description should not be blank", ErrInvalidArgument)
	}
	if !ok {
		return "", fmt.Errorf("%w: todo description should not contain markup: %q", ErrInvalidArgument, d)
	}
	return d, nil
}
