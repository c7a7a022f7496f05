// Package natsort implements natural-order string comparison, where runs
// of digits compare by numeric value instead of code point, so "page2"
// sorts before "page10".
//
// Used for ordering discovered documents and CBZ archive entries so
// sequentially numbered volumes and scans merge in human-expected order
// regardless of zero-padding.
package natsort

import (
	"sort"
	"strings"
)

// Less reports whether a sorts before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal
// to or after b. Comparison is case-insensitive and digit runs compare
// numerically, so names differing only in zero-padding compare equal.
func Compare(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	for len(a) > 0 && len(b) > 0 {
		ca, restA := chunk(a)
		cb, restB := chunk(b)
		var c int
		if ca.numeric && cb.numeric {
			c = compareNumeric(ca.text, cb.text)
		} else {
			c = strings.Compare(ca.text, cb.text)
		}
		if c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// Sort sorts ss in place in natural order. The sort is stable, so names
// whose keys compare equal keep their original relative order.
func Sort(ss []string) {
	sort.SliceStable(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}

type piece struct {
	text    string
	numeric bool
}

// chunk splits off the leading run of digits or non-digits.
func chunk(s string) (piece, string) {
	numeric := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return piece{text: s[:i], numeric: numeric}, s[i:]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// compareNumeric compares two digit runs by value without converting
// them, so arbitrarily long runs cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
