// Package staffid synthesizes human-readable staff identifiers from a
// department short name and a running per-department sequence.
package staffid

import (
	"fmt"
	"strings"
)

// Generator derives staff ids of the form ORG/SHORT/NNNN. Generation is
// deterministic for a given (short name, sequence) pair; global uniqueness is
// enforced by the primary-key constraint on the staff table, not here.
type Generator struct {
	orgPrefix string
}

// NewGenerator returns a generator for the given organization prefix.
func NewGenerator(orgPrefix string) Generator {
	return Generator{orgPrefix: strings.ToUpper(strings.TrimSpace(orgPrefix))}
}

// Generate builds the staff id, e.g. Generate("ENG", 7) -> "AFIT/ENG/0007".
func (g Generator) Generate(shortName string, sequence int) string {
	return fmt.Sprintf("%s/%s/%04d", g.orgPrefix, strings.ToUpper(shortName), sequence)
}
