package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseCalories reads a base-10, non-negative calorie count. Anything else
// is rejected rather than coerced.
func ParseCalories(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: calories are required", ErrInvalidInput)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: calories %q is not a whole number", ErrInvalidInput, text)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: calories cannot be negative", ErrInvalidInput)
	}
	return n, nil
}

// NormalizeName trims and NFC-normalizes a display name so visually equal
// names compare equal.
func NormalizeName(name string) (string, error) {
	s := norm.NFC.String(strings.TrimSpace(name))
	if s == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s, nil
}

func parseInput(name, caloriesText string) (string, int, error) {
	n, err := NormalizeName(name)
	if err != nil {
		return "", 0, err
	}
	c, err := ParseCalories(caloriesText)
	if err != nil {
		return "", 0, err
	}
	return n, c, nil
}
