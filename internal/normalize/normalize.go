// Package normalize turns raw scraped listing text into a signal-friendly form.
package normalize

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalized holds the cleaned text and token list for one listing.
type Normalized struct {
	Name        string
	Description string
	Text        string // name and description joined, cleaned
	Tokens      []string
}

// Empty reports whether no extractable text survived normalization.
func (n Normalized) Empty() bool {
	return len(n.Tokens) == 0
}

// Listing normalizes a listing's name and description. It never fails;
// empty input yields an empty token list.
func Listing(name, description string) Normalized {
	cleanName := Text(name)
	cleanDesc := Text(description)

	text := strings.TrimSpace(cleanName + " " + cleanDesc)
	return Normalized{
		Name:        cleanName,
		Description: cleanDesc,
		Text:        text,
		Tokens:      Tokens(text),
	}
}

// Text lower-cases, unescapes HTML entities, folds Unicode to NFKC,
// softens punctuation to spaces, and collapses whitespace.
func Text(s string) string {
	s = html.UnescapeString(s)
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '/' || r == ',' || r == '-' || r == '"':
			// Kept: decimals, bundling separators, inch marks.
			b.WriteRune(r)
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			b.WriteRune(' ')
		case unicode.IsControl(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens splits normalized text into comparison tokens, dropping bundling
// punctuation that Text preserves for the extractors.
func Tokens(text string) []string {
	if text == "" {
		return nil
	}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '/' || r == ','
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".-\"")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenSet returns tokens as a set for overlap computations.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
