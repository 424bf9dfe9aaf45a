// =============================================================================
// musiccharts - Chord Transposer
// =============================================================================
//
// This file turns a decomposed chord match into its typeset replacement text
// for a target key.
//
// POLICY:
//   key == "NNS"
//     The degree digit stays on the baseline. The accidental (field 1) and
//     the tail (field 3) are wrapped in superscript markup with horizontal
//     filler proportional to their visual width, so the chord baseline stays
//     monospace-aligned with the lyrics beneath it. The triangle glyph is
//     excluded from the width calculation; it renders narrower than a
//     monospace cell.
//
//   key != "NNS"
//     The accidental+digit pair is translated through the key table into a
//     lettered root. When the translated root is longer than the source
//     token, a remove-one-space flag is recorded so the substitution
//     consumes exactly one following space, preventing rightward drift of
//     the lyrics after the chord. Never more than one space per chord.
//
//   Inversions ("/<bass>" inside the tail) are validated against the bass
//   grammar and translated through the same table. A malformed bass (extra
//   digits, more than one slash, non-degree text) aborts the whole token
//   with a ChordError; it is never passed through silently.
//
// =============================================================================

package chord

import (
	"fmt"
	"strings"

	"github.com/jwcorell/musiccharts/internal/keytable"
)

// triangle is the major-seventh glyph excluded from width calculations.
const triangle = '△'

// =============================================================================
// ERROR TYPE
// =============================================================================

// ChordError records a chord whose inversion failed validation. Errors are
// collected per line and aggregated per key pass; they abort the pass for
// that key before any output is produced.
type ChordError struct {
	// Chord is the literal offending chord text as it appeared in the line.
	Chord string

	// LineNum is the 1-based line number, for the user-facing report.
	LineNum int
}

func (e *ChordError) Error() string {
	return fmt.Sprintf("invalid chord syntax %q on line %d", e.Chord, e.LineNum)
}

// =============================================================================
// REPLACEMENT
// =============================================================================

// Replacement is the substitution produced for one chord match.
type Replacement struct {
	// Match is the source match, offsets included.
	Match Match

	// Text is the typeset replacement for the matched substring.
	Text string

	// RemoveSpace requests that one space immediately following the match be
	// consumed during substitution, compensating for a translated root that
	// grew by a character.
	RemoveSpace bool
}

// =============================================================================
// TRANSPOSITION
// =============================================================================

// Transpose produces the replacement text for a chord match in the target
// key. lineNum is carried only into ChordError for reporting.
//
// Transpose is a pure function of its arguments: the same chord text in the
// same key always yields the same replacement.
func Transpose(m Match, key string, lineNum int) (Replacement, error) {
	var edited strings.Builder
	edited.WriteString(m.Leading)

	removeSpace := false

	// Rewrite the inversion bass first so the tail is final before it gets
	// superscripted below.
	tail := m.Tail
	if strings.Contains(tail, "/") {
		if strings.Count(tail, "/") > 1 {
			return Replacement{}, &ChordError{Chord: strings.TrimSpace(m.Text()), LineNum: lineNum}
		}
		upper, bass, _ := strings.Cut(tail, "/")
		if !bassRe.MatchString(bass) {
			return Replacement{}, &ChordError{Chord: strings.TrimSpace(m.Text()), LineNum: lineNum}
		}
		translated, err := keytable.Translate(key, bass)
		if err != nil {
			return Replacement{}, err
		}
		if len(translated) > len(bass) {
			removeSpace = true
		}
		tail = upper + "/" + translated
	}

	if key == keytable.NNSKey {
		// Pre-root accidentals get superscripted, left-padded.
		if m.Accidental != "" {
			pad := strings.Repeat(" ", visualWidth(m.Accidental))
			edited.WriteString(`\ts{{\thin` + pad + `}` + m.Accidental + `}`)
		}
		root, err := keytable.Translate(key, m.Root)
		if err != nil {
			return Replacement{}, err
		}
		edited.WriteString(root)
	} else {
		token := m.DegreeToken()
		root, err := keytable.Translate(key, token)
		if err != nil {
			return Replacement{}, err
		}
		if len(root) > len(token) {
			removeSpace = true
		}
		edited.WriteString(root)
	}

	// Post-root symbols get superscripted, right-padded, in every key.
	if tail != "" {
		pad := strings.Repeat(" ", visualWidth(tail))
		edited.WriteString(`\ts{` + tail + `{\thin` + pad + `}}`)
	}

	edited.WriteString(m.Trailing)

	return Replacement{
		Match:       m,
		Text:        edited.String(),
		RemoveSpace: removeSpace,
	}, nil
}

// visualWidth counts the monospace cells a string occupies when rendered as
// a superscript. The triangle glyph is skipped; every other rune counts as
// one cell.
func visualWidth(s string) int {
	width := 0
	for _, r := range s {
		if r != triangle {
			width++
		}
	}
	return width
}
