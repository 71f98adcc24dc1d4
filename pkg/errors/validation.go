package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateViewID validates a view identifier for safety and correctness.
// Identifiers end up in log lines, record strings and lookup maps, so the
// rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No path-like sequences (.., /, \)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateViewID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidView, "view id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidView, "view id too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidView, "view id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidView, "view id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// factoryNameRegex matches well-formed factory names ("flush",
// "flushToMargins", "centerX").
var factoryNameRegex = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// ValidateFactoryName validates the shape of a factory name. Resolution
// against the set of registered factories is done by the manifest package.
func ValidateFactoryName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownFactory, "factory name cannot be empty")
	}

	if !factoryNameRegex.MatchString(name) {
		return New(ErrCodeUnknownFactory, "invalid factory name: %q", name)
	}

	return nil
}

// attributeNameRegex matches well-formed attribute names ("left",
// "centerYWithinMargins", "none").
var attributeNameRegex = regexp.MustCompile(`^[a-z][a-zA-Z]*$`)

// ValidateAttributeName validates the shape of an attribute name.
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttribute, "attribute name cannot be empty")
	}

	if !attributeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAttribute, "invalid attribute name: %q", name)
	}

	return nil
}

// relationNameRegex matches relation spellings, symbolic ("==", "=", "<=",
// ">=") and word forms ("equal", "lessOrEqual", "greaterOrEqual").
var relationNameRegex = regexp.MustCompile(`^(==?|<=|>=|[a-z][a-zA-Z]*)$`)

// ValidateRelationName validates the shape of a relation name.
func ValidateRelationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRelation, "relation cannot be empty")
	}

	if !relationNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRelation, "invalid relation: %q", name)
	}

	return nil
}
