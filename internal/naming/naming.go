package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator splits a raw asset name into segments.
const Separator = "_"

// Format converts a raw asset name into an identifier. The name is split on
// Separator, every segment is capitalized and the segments are joined back
// without a separator. When leadingCapital is false the first non-empty
// segment is lowercased instead, which yields lowerCamelCase.
func Format(name string, leadingCapital bool) string {
	lower := cases.Lower(language.Und)

	var b strings.Builder
	first := !leadingCapital
	for _, part := range strings.Split(name, Separator) {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(lower.String(part))
			first = false
			continue
		}
		b.WriteString(Capitalize(part))
	}

	return b.String()
}

// Capitalize uppercases the first rune of every whitespace-delimited word and
// lowercases the rest of it. Whitespace is copied through unchanged, and
// digits or punctuation inside a word never start a new word.
func Capitalize(s string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for s != "" {
		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if end != 0 {
			if end < 0 {
				end = len(s)
			}
			b.WriteString(s[:end])
			s = s[end:]
			continue
		}

		end = strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		word := s[:end]
		_, size := utf8.DecodeRuneInString(word)
		b.WriteString(upper.String(word[:size]))
		b.WriteString(lower.String(word[size:]))
		s = s[end:]
	}

	return b.String()
}

// TypeName converts a raw asset name to UpperCamelCase.
func TypeName(name string) string {
	return Format(name, true)
}

// MemberName converts a raw asset name to lowerCamelCase.
func MemberName(name string) string {
	return Format(name, false)
}
