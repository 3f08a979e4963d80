package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPrice normalizes a stored price: the value is parsed as a float64,
// rounded to two decimal places and rendered in its shortest form with at
// least one fractional digit, so "10.990" becomes "10.99" and "10.999"
// becomes "11.0".
//
// Rounding operates on the exact binary value. "15.995" is stored as
// 15.99499999... and therefore renders as "15.99"; exact ties such as "0.125"
// go to the even neighbour ("0.12").
func FormatPrice(raw string) (string, error) {
	v, err := ParsePrice(raw)
	if err != nil {
		return "", err
	}

	switch {
	case math.IsNaN(v):
		return "nan", nil
	case math.IsInf(v, 1):
		return "inf", nil
	case math.IsInf(v, -1):
		return "-inf", nil
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return "", fmt.Errorf("rounding price %q: %w", raw, err)
	}
	return shortestFloat(rounded), nil
}

// ParsePrice parses a decimal price string, ignoring surrounding whitespace.
// Hexadecimal floats ("0x1p-2") are rejected.
func ParsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("invalid price %q: not a decimal number", raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	return v, nil
}

// ValidPrice reports whether raw is a finite decimal number.
func ValidPrice(raw string) bool {
	v, err := ParsePrice(raw)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func shortestFloat(v float64) string {
	if math.Abs(v) >= 1e16 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
