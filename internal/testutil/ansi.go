// Package testutil holds small helpers shared by the test suites.
package testutil

import "regexp"

// csiRegex matches CSI escape sequences (ESC [ parameters final-byte),
// which covers the color and cursor codes the spinner emits.
var csiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes returns s with all CSI escape sequences removed, so
// assertions on terminal output can compare plain text.
func StripAnsiCodes(s string) string {
	return csiRegex.ReplaceAllString(s, "")
}
