// Package xform holds the string transformers envutil readers are built from.
// Each has the shape func(A) (B, error) so they chain through envutil.Map.
package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that accepts only the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v is not one of %v", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value (strconv.ParseBool syntax).
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Duration parses a string as a time.Duration (time.ParseDuration syntax).
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// SlogLevel parses "debug", "info", "warn" or "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
