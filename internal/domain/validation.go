package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidSearch   = errors.New("invalid search term")
	ErrInvalidIDFormat = errors.New("invalid ID format")
)

const (
	MinSearchLength = 2
	MaxSearchLength = 255
	MaxIDLength     = 128

	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// ValidateSearchTerm checks an account name search term. Length is
// counted in characters after trimming.
func ValidateSearchTerm(term string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(term))
	switch {
	case n < MinSearchLength:
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidSearch, MinSearchLength)
	case n > MaxSearchLength:
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidSearch, MaxSearchLength)
	}
	return nil
}

// ValidateID checks an account id taken from a path or CLI argument.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" || len(id) > MaxIDLength {
		return ErrInvalidIDFormat
	}
	if strings.IndexFunc(id, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: contains control characters", ErrInvalidIDFormat)
	}
	return nil
}

// NormalizePage clamps event listing parameters into range.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return min(limit, MaxPageSize), max(offset, 0)
}
