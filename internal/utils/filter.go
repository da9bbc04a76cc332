package utils

import (
	"unicode"
)

// ContainsSpace checks if a string contains any whitespace
func ContainsSpace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// ContainsControl checks if a string contains control or format characters
func ContainsControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return true
		}
	}
	return false
}

// IsValidInput checks if a letters or template argument can be matched
// against a word list. Word list tokens never hold whitespace, so input
// that does can only ever produce empty results.
func IsValidInput(s string) bool {
	return !ContainsSpace(s) && !ContainsControl(s)
}
