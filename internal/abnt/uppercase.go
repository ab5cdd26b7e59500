package abnt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var braceRemover = strings.NewReplacer("{", "", "}", "")

// Uppercase applies the full Unicode uppercase mapping to s and drops the
// grouping braces. Mappings that expand (ß → SS) are honored.
func Uppercase(s string) string {
	// A Caser keeps state and is not safe for concurrent use.
	return cases.Upper(language.Und).String(braceRemover.Replace(s))
}
