// Package naming converts Go identifiers into target-language identifiers.
package naming

import (
	"strings"
	"unicode"
)

// SnakeCase converts a Go identifier into snake_case.
// Examples:
//   - "TestU8" -> "test_u8"
//   - "OrderID" -> "order_id"
//   - "XMLParser" -> "xml_parser"
//   - "already_snake" -> "already_snake"
func SnakeCase(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// Tokenize splits a CamelCase, camelCase or separated identifier into tokens.
// Digits stay attached to the token before them.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID" -> split before 'I'; "Test8Bit" -> split before 'B'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// End of acronym: "XMLParser" -> "XML" + "Parser"
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
