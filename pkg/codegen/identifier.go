package codegen

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// splitWords breaks arbitrary user text into identifier words: runs of
// letters/digits, split additionally on lower-to-upper case boundaries so
// "dealCompleted" and "deal_completed" produce the same words.
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && unicode.IsLower(prev) {
				flush()
			}
			cur.WriteRune(r)
		default:
			flush()
		}
		prev = r
	}
	flush()
	return words
}

// MakePascal sanitizes candidate into a PascalCase identifier, substituting
// fallback when nothing valid remains or the result would start with a
// digit. Words that already carry uppercase are kept verbatim so acronyms
// like NPC survive. Deterministic and side-effect free.
func MakePascal(candidate, fallback string) string {
	words := splitWords(candidate)
	var sb strings.Builder
	for _, w := range words {
		if strings.IndexFunc(w, unicode.IsUpper) >= 0 {
			sb.WriteString(w)
		} else {
			sb.WriteString(titleCaser.String(w))
		}
	}
	out := sb.String()
	if out == "" || unicode.IsDigit(rune(out[0])) {
		return fallback
	}
	return out
}

// MakeCamel sanitizes candidate into a camelCase identifier with the same
// fallback rules as MakePascal.
func MakeCamel(candidate, fallback string) string {
	out := MakePascal(candidate, "")
	if out == "" || unicode.IsDigit(rune(out[0])) {
		return fallback
	}
	return strings.ToLower(out[:1]) + out[1:]
}

// EnsureUnique returns base if it is not yet taken, otherwise appends a
// numeric suffix derived from index (then counts upward) until the name is
// free. Uniqueness is case-insensitive because the target language resolves
// member names case-sensitively but collisions differing only in case are
// confusing in generated output. The chosen name is recorded in used.
func EnsureUnique(base string, used map[string]struct{}, index int) string {
	name := base
	for n := index; ; n++ {
		key := strings.ToLower(name)
		if _, taken := used[key]; !taken {
			used[key] = struct{}{}
			return name
		}
		name = base + strconv.Itoa(n)
	}
}
