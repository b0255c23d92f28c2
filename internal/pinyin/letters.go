// Package pinyin holds the pinyin-initial helpers used by the spell index:
// a 26-bit letter set, covering-set reduction of spell strings and
// subsequence matching, plus derivation of initials from Han text.
package pinyin

import (
	"sort"
	"strings"
)

// Letters is a set of upper-case Latin letters, bit i standing for 'A'+i.
type Letters uint32

// Letter returns the set holding the single letter c, or 0 when c is not
// an upper-case Latin letter.
func Letter(c byte) Letters {
	if c < 'A' || c > 'Z' {
		return 0
	}
	return 1 << (c - 'A')
}

// LettersOf returns the set of letters appearing in s. Characters other
// than upper-case Latin letters are ignored.
func LettersOf(s string) Letters {
	var l Letters
	for i := 0; i < len(s); i++ {
		l |= Letter(s[i])
	}
	return l
}

// Contains reports whether every letter of o is in l.
func (l Letters) Contains(o Letters) bool {
	return l&o == o
}

// Has reports whether c is in l.
func (l Letters) Has(c byte) bool {
	m := Letter(c)
	return m != 0 && l&m != 0
}

// Count returns the number of letters in l.
func (l Letters) Count() int {
	n := 0
	for v := l; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// String renders the set in alphabetical order, e.g. "HMQSX".
func (l Letters) String() string {
	var b strings.Builder
	for i := 0; i < 26; i++ {
		if l&(1<<i) != 0 {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}

// IsSubsequence reports whether pattern occurs in s with its characters in
// order, not necessarily adjacent. A plain substring always qualifies.
func IsSubsequence(s, pattern string) bool {
	if len(pattern) > len(s) {
		return false
	}
	if strings.Contains(s, pattern) {
		return true
	}
	j := 0
	for i := 0; i < len(s) && j < len(pattern); i++ {
		if s[i] == pattern[j] {
			j++
		}
	}
	return j == len(pattern)
}

// Covering reduces spells to a minimal covering set: duplicates are
// dropped, as is any spell that is a subsequence of a longer kept one.
// The returned slice is ordered longest first.
func Covering(spells []string) []string {
	sorted := make([]string, 0, len(spells))
	for _, s := range spells {
		if s != "" {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	kept := make([]string, 0, len(sorted))
	for _, s := range sorted {
		covered := false
		for _, k := range kept {
			if IsSubsequence(k, s) {
				covered = true
				break
			}
		}
		if !covered {
			kept = append(kept, s)
		}
	}
	return kept
}

// CountByte returns how many times c occurs in s.
func CountByte(s string, c byte) int {
	return strings.Count(s, string(c))
}
