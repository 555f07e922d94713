// Package langname turns language codes into display names.
package langname

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Resolver struct {
	namer display.Namer
}

// NewResolver names languages in English.
func NewResolver() *Resolver {
	return &Resolver{namer: display.English.Tags()}
}

// Resolve returns the capitalised English name for code, or code itself when
// the code does not parse or has no name. It never panics.
func (r *Resolver) Resolve(code string) (name string) {
	defer func() {
		if recover() != nil {
			name = code
		}
	}()

	if strings.TrimSpace(code) == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	n := r.namer.Name(tag)
	if n == "" {
		return code
	}
	return capitalize(n)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
