package utils

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// InsertTo inserts value at index, growing the slice with zero values when index is past the end.
func InsertTo[T any](a []T, index int, value T) []T {
	n := len(a)
	if index < 0 {
		index = (index%n + n) % n
	}
	switch {
	case index == n: // nil or empty slice or after last element
		return append(a, value)

	case index < n: // index < len(a)
		a = append(a[:index+1], a[index:]...)
		a[index] = value
		return a

	case index < cap(a): // index > len(a)
		a = a[:index+1]
		var zero T
		for i := n; i < index; i++ {
			a[i] = zero
		}
		a[index] = value
		return a

	default:
		b := make([]T, index+1) // malloc
		if n > 0 {
			copy(b, a)
		}
		b[index] = value
		return b
	}
}

func CenterNumber(brw int, width int) string {
	lineNumber := strconv.Itoa(brw)
	padding := width - len(lineNumber)
	if padding < 0 {
		return lineNumber
	}
	leftPad := fmt.Sprintf("%*s", padding/2, "")
	rightPad := fmt.Sprintf("%*s", padding-(padding/2), "")
	return leftPad + lineNumber + rightPad
}

// IsIgnored reports whether the base name of path matches any of the glob patterns.
func IsIgnored(path string, ignorePatterns []string) bool {
	for _, pattern := range ignorePatterns {
		match, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			continue
		}
		if match {
			return true
		}
	}
	return false
}

// HasPathPrefix compares whole path components, "/a/bc" does not start with "/a/b".
func HasPathPrefix(path, prefix string) bool {
	path = filepath.Clean(path)
	prefix = filepath.Clean(prefix)
	if path == prefix {
		return true
	}
	if prefix == string(filepath.Separator) {
		return strings.HasPrefix(path, prefix)
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

// ExpandTabs replaces every tab with width spaces.
func ExpandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// CountIndent counts leading spaces.
func CountIndent(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
