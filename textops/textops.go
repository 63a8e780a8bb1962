/*
Package textops provides byte-oriented string helpers in the style of
Python's str methods: splitting, stripping, joining, searching, counting
and ASCII case mapping.

The helpers consume and produce plain Go strings and share no state with
the ustring container; character classification and case mapping are
ASCII-only.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textops

import (
	"strings"

	"github.com/npillmayer/ustring/codec"
)

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Split separates s by sep, front to back. Empty fields are dropped, so
// adjacent separators do not produce empty strings. An empty sep splits
// around runs of whitespace. A negative max means no limit; otherwise at
// most max fields are split off and the unsplit rest is appended as the
// final field.
func Split(s, sep string, max int) []string {
	if max < 0 {
		max = int(^uint(0) >> 1)
	}
	if sep == "" {
		return splitWhitespace(s, max)
	}
	var result []string
	start := 0
	for end := strings.Index(s, sep); end != -1; end = indexFrom(s, sep, start) {
		if start < end {
			if max <= 0 {
				break
			}
			max--
			result = append(result, s[start:end])
		}
		start = end + len(sep)
	}
	if start < len(s) {
		result = append(result, s[start:])
	}
	return result
}

func indexFrom(s, sep string, start int) int {
	if start > len(s) {
		return -1
	}
	i := strings.Index(s[start:], sep)
	if i == -1 {
		return -1
	}
	return start + i
}

func splitWhitespace(s string, max int) []string {
	var result []string
	i, j := 0, 0
	for i < len(s) {
		for i < len(s) && isASCIISpace(s[i]) {
			i++
		}
		j = i
		for i < len(s) && !isASCIISpace(s[i]) {
			i++
		}
		if j < i {
			if max <= 0 {
				break
			}
			max--
			result = append(result, s[j:i])
			j = i
		}
	}
	if j < len(s) {
		result = append(result, s[j:])
	}
	return result
}

// RSplit separates s by sep, back to front. Fields come back in string
// order; only the counting of max starts from the right. A negative max
// is equivalent to Split.
func RSplit(s, sep string, max int) []string {
	if max < 0 {
		return Split(s, sep, max)
	}
	if sep == "" {
		return rsplitWhitespace(s, max)
	}
	var result []string
	end := len(s)
	for start := strings.LastIndex(s[:end], sep); start != -1; start = strings.LastIndex(s[:end], sep) {
		if start+len(sep) < end {
			if max <= 0 {
				break
			}
			max--
			result = append(result, s[start+len(sep):end])
		}
		end = start
	}
	if end > 0 {
		result = append(result, s[:end])
	}
	reverse(result)
	return result
}

func rsplitWhitespace(s string, max int) []string {
	var result []string
	i, j := len(s), len(s)
	for i > 0 {
		for i > 0 && isASCIISpace(s[i-1]) {
			i--
		}
		j = i
		for i > 0 && !isASCIISpace(s[i-1]) {
			i--
		}
		if i < j {
			if max <= 0 {
				break
			}
			max--
			result = append(result, s[i:j])
			j = i
		}
	}
	if j > 0 {
		result = append(result, s[:j])
	}
	reverse(result)
	return result
}

func reverse(xs []string) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// SplitLines separates s at line breaks, handling "\n", "\r" and "\r\n".
// Line breaks are not included in the result unless keepEnds is true.
func SplitLines(s string, keepEnds bool) []string {
	var result []string
	i, j := 0, 0
	for i < len(s) {
		for i < len(s) && s[i] != '\n' && s[i] != '\r' {
			i++
		}
		end := i
		if i < len(s) {
			if i+1 < len(s) && s[i] == '\r' && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			if keepEnds {
				end = i
			}
		}
		result = append(result, s[j:end])
		j = i
	}
	return result
}

const (
	leftStrip = iota
	rightStrip
	bothStrip
)

func doStrip(s string, stripType int, cutset string) string {
	i, j := 0, len(s)
	if cutset == "" {
		if stripType != rightStrip {
			for i < len(s) && isASCIISpace(s[i]) {
				i++
			}
		}
		if stripType != leftStrip {
			for j > i && isASCIISpace(s[j-1]) {
				j--
			}
		}
		return s[i:j]
	}
	if stripType != rightStrip {
		for i < len(s) && strings.IndexByte(cutset, s[i]) != -1 {
			i++
		}
	}
	if stripType != leftStrip {
		for j > i && strings.IndexByte(cutset, s[j-1]) != -1 {
			j--
		}
	}
	return s[i:j]
}

// Strip removes leading and trailing bytes contained in cutset. An empty
// cutset strips whitespace.
func Strip(s, cutset string) string {
	return doStrip(s, bothStrip, cutset)
}

// LStrip removes leading bytes contained in cutset. An empty cutset
// strips whitespace.
func LStrip(s, cutset string) string {
	return doStrip(s, leftStrip, cutset)
}

// RStrip removes trailing bytes contained in cutset. An empty cutset
// strips whitespace.
func RStrip(s, cutset string) string {
	return doStrip(s, rightStrip, cutset)
}

// Join concatenates the strings of seq with sep between elements.
func Join(seq []string, sep string) string {
	return strings.Join(seq, sep)
}

// HasPrefix reports whether s, beginning at position start, starts with
// prefix.
func HasPrefix(s, prefix string, start int) bool {
	if start < 0 || start > len(s) {
		return false
	}
	return strings.HasPrefix(s[start:], prefix)
}

// HasSuffix reports whether s ends with suffix, with the match not
// reaching before position start.
func HasSuffix(s, suffix string, start int) bool {
	if start < 0 || len(s) < start+len(suffix) {
		return false
	}
	return strings.HasSuffix(s, suffix)
}

// IsAlnum reports whether s is nonempty and all ASCII alphanumeric.
func IsAlnum(s string) bool {
	return allBytes(s, func(b byte) bool {
		return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
	})
}

// IsAlpha reports whether s is nonempty and all ASCII alphabetic.
func IsAlpha(s string) bool {
	return allBytes(s, func(b byte) bool {
		return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
	})
}

// IsDigit reports whether s is nonempty and all decimal digits.
func IsDigit(s string) bool {
	return allBytes(s, func(b byte) bool { return b >= '0' && b <= '9' })
}

// IsLower reports whether s is nonempty and all lowercase ASCII letters.
func IsLower(s string) bool {
	return allBytes(s, func(b byte) bool { return b >= 'a' && b <= 'z' })
}

// IsUpper reports whether s is nonempty and all uppercase ASCII letters.
func IsUpper(s string) bool {
	return allBytes(s, func(b byte) bool { return b >= 'A' && b <= 'Z' })
}

// IsSpace reports whether s is nonempty and all whitespace.
func IsSpace(s string) bool {
	return allBytes(s, isASCIISpace)
}

func allBytes(s string, pred func(byte) bool) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

// ToLower returns s with ASCII uppercase letters mapped to lowercase.
func ToLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// ToUpper returns s with ASCII lowercase letters mapped to uppercase.
func ToUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Count returns the number of non-overlapping occurrences of sub in s.
// An empty sub counts as zero.
func Count(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// Replace returns s with occurrences of old replaced by new. A negative
// max replaces all occurrences; an empty old returns s unchanged.
func Replace(s, old, new string, max int) string {
	if old == "" {
		return s
	}
	return strings.Replace(s, old, new, max)
}

// Repeat returns s concatenated n times. Non-positive n yields the empty
// string.
func Repeat(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	return strings.Repeat(s, n)
}

// IsChinese reports whether the first character of s is a Chinese
// character. The narrow variant tests U+4E00..U+9FA5 only; broad
// additionally covers the CJK extensions and compatibility ideographs.
func IsChinese(s string, broad bool) bool {
	cp, _ := codec.DecodeNext[uint32]([]byte(s))
	if broad {
		return cp >= 0x4E00 && cp <= 0x9FFF ||
			cp >= 0x3400 && cp <= 0x4DBF ||
			cp >= 0x20000 && cp <= 0x2A6DF ||
			cp >= 0x2A700 && cp <= 0x2B73F ||
			cp >= 0x2B740 && cp <= 0x2B81F ||
			cp >= 0x2B820 && cp <= 0x2CEAF ||
			cp >= 0xF900 && cp <= 0xFAFF ||
			cp >= 0x2F800 && cp <= 0x2FA1F
	}
	return cp >= 0x4E00 && cp <= 0x9FA5
}
