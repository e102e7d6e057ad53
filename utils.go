package recognizer

import "strings"

// StripHexPrefix removes one leading "0x" or "0X".
func StripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func IsHexChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func IsHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsHexChar(s[i]) {
			return false
		}
	}
	return true
}

// HexValue returns the value of a hex digit, or -1.
func HexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// Digits keeps only the ASCII decimal digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hasChar(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// AllSame reports whether every byte of s equals the first one.
// The empty string is not all-same.
func AllSame(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// CountDelimiters counts each delimiter byte of set found in s.
func CountDelimiters(s string, set string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		if hasChar(set, s[i]) {
			counts[s[i]]++
		}
	}
	return counts
}
