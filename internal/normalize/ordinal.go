// Package normalize holds the pure reshaping and classification routines
// shared by the request handlers. Every function here is side-effect free.
package normalize

import (
	"strconv"
	"strings"
)

// Ordinal returns the English ordinal form of n, e.g. 119 -> "119th".
// The teens always take "th" regardless of the last digit.
func Ordinal(n int) string {
	suffix := "th"
	mod100 := n % 100
	if mod100 < 11 || mod100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// OrdinalString is Ordinal for string input. Unparseable input is treated
// as 0 and yields "0th".
func OrdinalString(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = 0
	}
	return Ordinal(n)
}
