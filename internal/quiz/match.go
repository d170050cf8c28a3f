package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/vovakirdan/tui-flags/internal/countries"
)

// fold returns the comparison key for free text: trimmed, NFC-composed and
// case-folded, so "CÔTE D'IVOIRE" and "côte d'ivoire" compare equal.
func fold(s string) string {
	// Casers carry state; never share one.
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Matches reports whether input answers item under rule. RuleLetter is
// graded through the mask and never matches a whole item here.
func Matches(rule Rule, input string, item countries.Country) bool {
	switch rule {
	case RuleName:
		return fold(input) != "" && fold(input) == fold(item.Name)
	case RuleCode:
		code := strings.TrimSpace(input)
		return code != "" && strings.EqualFold(code, item.Code)
	default:
		return false
	}
}

// parseLetter accepts exactly one letter, ignoring surrounding spaces.
func parseLetter(input string) (rune, bool) {
	s := norm.NFC.String(strings.TrimSpace(input))
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}

// sameLetter compares two runes case-insensitively.
func sameLetter(a, b rune) bool {
	return fold(string(a)) == fold(string(b))
}
