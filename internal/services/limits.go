package services

import "unicode/utf8"

// Column limits shared by the pokemon, favorites and teams tables, in characters
const (
	maxNameLength  = 100
	maxImageLength = 500
)

// longerThan reports whether s holds more than max characters
func longerThan(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
