package lint

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zauni/commitguard/pkg/core"
)

// MatchesCase reports whether s is already written in the target case.
func MatchesCase(s string, target core.TargetCase) bool {
	return ToCase(s, target) == s
}

// ToCase converts s to the target case. Casers are built per call since
// they must not be shared between goroutines.
func ToCase(s string, target core.TargetCase) string {
	lower := cases.Lower(language.Und)
	switch target {
	case core.CaseLower:
		return lower.String(s)
	case core.CaseUpper:
		return cases.Upper(language.Und).String(s)
	case core.CasePascal:
		return joinWords(s, "", func(i int, w string) string { return titleWord(w) })
	case core.CaseCamel:
		return joinWords(s, "", func(i int, w string) string {
			if i == 0 {
				return lower.String(w)
			}
			return titleWord(w)
		})
	case core.CaseKebab:
		return joinWords(s, "-", func(_ int, w string) string { return lower.String(w) })
	case core.CaseSnake:
		return joinWords(s, "_", func(_ int, w string) string { return lower.String(w) })
	case core.CaseStart:
		return joinWords(s, " ", func(_ int, w string) string { return upperFirst(w) })
	case core.CaseSentence:
		return sentence(s)
	default:
		return s
	}
}

func joinWords(s, sep string, fn func(i int, w string) string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = fn(i, w)
	}
	return strings.Join(words, sep)
}

// titleWord upper-cases the first letter and lower-cases the rest.
func titleWord(w string) string {
	return cases.Title(language.Und).String(w)
}

// upperFirst upper-cases the first letter and keeps the rest.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// sentence capitalizes the first word and leaves the remainder untouched.
func sentence(s string) string {
	first, rest, found := strings.Cut(s, " ")
	out := upperFirst(cases.Lower(language.Und).String(first))
	if found {
		out += " " + rest
	}
	return out
}

// splitWords breaks s into words at separators and at case transitions:
// "fooBar-baz HTTPServer" yields foo, Bar, baz, HTTP, Server.
func splitWords(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r):
			// fooBar
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// HTTPServer
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}
