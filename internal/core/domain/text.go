package domain

import (
	"regexp"
	"strings"
)

// asciiPunctuation is the set of characters CleanText removes.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+`)

// CleanText lowercases text and removes ASCII punctuation.
// Whitespace runs are left untouched.
func CleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(text))
}

// Tokenize splits text into maximal runs of ASCII letters and digits.
// Every other character is a separator.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}
