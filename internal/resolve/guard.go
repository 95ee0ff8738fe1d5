package resolve

import (
	"strings"
	"unicode"
)

// MatchesPrefix reports whether a file name belongs to the application with
// the given display name when the location is keyed by executable name
// rather than bundle identifier (crash logs, diagnostic reports, shortcuts).
//
// A bare prefix match is not enough: "Foobar.crash" must not match the app
// "Foo". The character immediately after the matched prefix has to be a
// separator boundary: end of string, '.', '_', '-', a space, or a digit
// (timestamps appended directly to the name, e.g. "Foo_2024-01-02.ips").
func MatchesPrefix(fileName, appName string) bool {
	if appName == "" || len(fileName) < len(appName) {
		return false
	}
	if !strings.EqualFold(fileName[:len(appName)], appName) {
		return false
	}
	rest := fileName[len(appName):]
	if rest == "" {
		return true
	}
	switch r := rune(rest[0]); {
	case r == '.' || r == '_' || r == '-' || r == ' ':
		return true
	case unicode.IsDigit(r):
		return true
	}
	return false
}
