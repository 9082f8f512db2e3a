// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phrase holds the string helpers the generators share: list
// cleanup, fallbacks, human joins, and placeholder filling. Everything here
// is pure and allocation-local.
package phrase

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Compact trims every item and drops empty ones, preserving order and
// duplicates.
func Compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Clean trims, drops empty items, and removes case-insensitive duplicates,
// keeping the first occurrence.
func Clean(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range Compact(items) {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// Or returns the trimmed value, or fallback when the value is blank.
func Or(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// OrList returns Clean(items), or a copy of fallback when nothing survives.
func OrList(items, fallback []string) []string {
	if out := Clean(items); len(out) > 0 {
		return out
	}
	return append([]string(nil), fallback...)
}

// Take returns at most the first n items.
func Take(items []string, n int) []string {
	if n < len(items) {
		return items[:n]
	}
	return items
}

// Cycle returns items[i mod len(items)], or "" for an empty list.
func Cycle(items []string, i int) string {
	if len(items) == 0 {
		return ""
	}
	return items[i%len(items)]
}

// CycleOr is Cycle with a fallback for an empty list.
func CycleOr(items []string, i int, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return Cycle(items, i)
}

// Chunk splits items into n contiguous, order-preserving groups whose sizes
// differ by at most one; earlier groups take the remainder.
func Chunk(items []string, n int) [][]string {
	if n <= 0 {
		return nil
	}
	out := make([][]string, n)
	base, extra := len(items)/n, len(items)%n
	start := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = items[start : start+size]
		start += size
	}
	return out
}

// Join renders a human list: "a", "a and b", "a, b, and c".
func Join(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Bare strips trailing sentence punctuation so a phrase can be embedded
// mid-sentence.
func Bare(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?;: ")
}

// Clause prepares a phrase for use after other words: trailing punctuation
// is removed and a leading capital is lowered unless the word looks like an
// acronym ("KPI", "AI").
func Clause(s string) string {
	s = Bare(s)
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsUpper(first) {
		return s
	}
	next, _ := utf8.DecodeRuneInString(s[size:])
	if unicode.IsUpper(next) || unicode.IsDigit(next) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

// Article prefixes s with "a" or "an" by its first letter.
func Article(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.ContainsRune("aeiouAEIOU", []rune(s)[0]) {
		return "an " + s
	}
	return "a " + s
}

// Sentence capitalizes the first letter and guarantees terminal punctuation.
func Sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(first)) + s[size:]
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

// Words splits s into lowercase words of letters and digits.
func Words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// HasWordPrefix reports whether any word of s starts with one of the
// keywords. Keywords must be lowercase.
func HasWordPrefix(s string, keywords []string) bool {
	for _, w := range Words(s) {
		for _, k := range keywords {
			if strings.HasPrefix(w, k) {
				return true
			}
		}
	}
	return false
}

// Vars maps placeholder names to values for Fill.
type Vars map[string]string

// Fill replaces every {name} placeholder in tmpl with its value.
// Unknown placeholders are left untouched.
func (v Vars) Fill(tmpl string) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", v[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// FillAll applies Fill to every template in order.
func (v Vars) FillAll(tmpls []string) []string {
	out := make([]string, len(tmpls))
	for i, t := range tmpls {
		out[i] = v.Fill(t)
	}
	return out
}

// With returns a copy of v with the extra pairs set.
func (v Vars) With(pairs ...string) Vars {
	out := make(Vars, len(v)+len(pairs)/2)
	for k, val := range v {
		out[k] = val
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}
