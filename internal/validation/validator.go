// =============================================================================
// musiccharts - Validation Module
// =============================================================================
//
// This module provides the two validation surfaces of the tool:
//
//   1. Key validation: the user-supplied key list is checked against the key
//      table before any line processing begins. Unknown keys are fatal to
//      the whole run (fail fast, whole-run abort, not per-chord).
//
//   2. Chord error reporting: chord syntax errors are collected per line
//      during a key pass, never thrown immediately, so the user sees every
//      invalid chord at once instead of fixing one and rerunning. A key pass
//      with errors produces no output for that key; other keys are
//      unaffected.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/jwcorell/musiccharts/internal/chord"
	"github.com/jwcorell/musiccharts/internal/keytable"
)

// =============================================================================
// KEY VALIDATION
// =============================================================================

// ValidateKeys checks a user-supplied key list against the recognized key
// set. It returns an error naming every unknown key, or nil when the whole
// list is valid. An empty list is an error; there is nothing to process.
func ValidateKeys(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("no keys requested (valid keys: %s)", strings.Join(keytable.ListValidKeys(), ","))
	}

	var bad []string
	for _, key := range keys {
		if !keytable.IsValidKey(key) {
			bad = append(bad, key)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid keys found: %s", strings.Join(bad, ","))
	}
	return nil
}

// =============================================================================
// CHORD ERROR REPORTING
// =============================================================================

// FormatChordErrors renders the aggregated chord errors of one key pass as
// the user-facing listing:
//
//	Error: invalid chord syntax found
//	----------------------------------
//	Line 12 : 2/45
//	Line 30 : 1sus/3/5
//
// Line numbers are 1-based; the chord text is the literal offending
// substring, enough to locate and fix it in the source file.
func FormatChordErrors(errs []*chord.ChordError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Error: invalid chord syntax found\n")
	b.WriteString("----------------------------------\n")
	for _, e := range errs {
		b.WriteString(fmt.Sprintf("Line %-3d: %s\n", e.LineNum, e.Chord))
	}
	return b.String()
}
