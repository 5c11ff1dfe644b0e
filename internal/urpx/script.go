package urpx

import (
	"fmt"
	"strings"
)

// hiddenVerificationLine is fixed boilerplate the target script format
// requires as the first statement of every generated function.
const hiddenVerificationLine = "  global _hidden_verificationVariable = 0"

const scriptIndent = "  "

// RenderScript wraps the document's embedded script body in a named
// function definition. fallback names the function when the project
// declares no application name; it is expected to be the source file's
// stem. The script body is opaque text and is copied through verbatim,
// one indented line at a time.
func RenderScript(doc *Document, fallback string) string {
	name := fallback
	if doc != nil && doc.Application.ApplicationInfo.Name != nil {
		name = *doc.Application.ApplicationInfo.Name
	}
	lines := []string{fmt.Sprintf("def %s():", name), hiddenVerificationLine}
	if doc != nil {
		for _, ln := range splitLines(doc.Application.URScript.Script) {
			lines = append(lines, scriptIndent+ln)
		}
	}
	return strings.Join(lines, "\n")
}

// splitLines splits on \n, \r\n, and \r boundaries. An empty body
// yields no lines, and a single trailing newline does not produce a
// trailing empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
