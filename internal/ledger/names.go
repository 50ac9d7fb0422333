// Package ledger holds the pure reconciliation arithmetic shared by the
// department modules. Functions here perform no I/O and tolerate zero or
// absent inputs.
package ledger

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName canonicalizes a product or bread-type name: tokens are
// lowercased, title-cased and rejoined with single spaces. Casing and
// spacing variants of the same name collapse into one stock key.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	caser := cases.Title(language.English)
	for i, f := range fields {
		fields[i] = caser.String(f)
	}
	return strings.Join(fields, " ")
}
