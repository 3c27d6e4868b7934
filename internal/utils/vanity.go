// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeVanity trims surrounding whitespace and case-folds s so that
// "Alice" and "alice" name the same profile.
func NormalizeVanity(s string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(strings.TrimSpace(s))
}

// NormalizeEmail trims surrounding whitespace. Emails keep their case.
func NormalizeEmail(s string) string {
	return strings.TrimSpace(s)
}
