package testutil

import "github.com/charmbracelet/x/ansi"

// StripANSI removes escape sequences so view assertions compare the text a
// user actually sees, independent of the active color profile.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
