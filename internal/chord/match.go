// =============================================================================
// musiccharts - Chord Tokenizer
// =============================================================================
//
// This file implements the chord token recognizer: a scanner that finds
// chord-shaped substrings in a line of mixed lyrics, labels, and chords.
//
// RECOGNITION GRAMMAR:
//   A chord is a whitespace-delimited token of the form
//
//       [#|b] <digit 1-7> [modifier/inversion text]
//
//   decomposed into five positional fields:
//     0. Leading    - whitespace the match consumes but does not alter
//     1. Accidental - "#", "b", or empty
//     2. Root       - the scale-degree digit (input is always authored NNS)
//     3. Tail       - extension/inversion text, may be empty (e.g. "7",
//                     "sus", "m7/5")
//     4. Trailing   - trailing filler, may be empty
//
//   Concatenating the five fields reproduces the matched substring exactly;
//   the transposer and formatter rely on that round-trip property.
//
//   Parentheses around chords are decorative: the caller strips them from
//   the line before matching and they are never re-inserted.
//
// OFFSETS:
//   Each match carries the byte offsets of its span so the formatter can
//   apply replacements right-to-left without re-searching the line. This
//   also keeps structurally identical chords at different positions
//   independent of one another.
//
// =============================================================================

package chord

import "regexp"

// tokenRe validates a single whitespace-delimited token as a chord and
// splits it into accidental, root digit, tail, and trailing filler. The tail
// accepts chord symbol characters only (extensions, accidentals, inversion
// slash, the △ and ø glyphs); anything after that, such as markup braces
// inserted by an earlier formatting phase, lands in the trailing filler and
// passes through substitution unaltered.
var tokenRe = regexp.MustCompile(`^([#b]?)([1-7])([0-9A-Za-z△ø#+/-]*)(\S*)$`)

// bassRe validates the bass part of an inversion. A bass token is a degree
// digit with an optional accidental and nothing else.
var bassRe = regexp.MustCompile(`^[#b]?[1-7]$`)

// Match is one chord occurrence in a line, decomposed into the five
// positional fields of the recognition grammar.
type Match struct {
	// Leading is the whitespace run consumed before the chord (field 0).
	Leading string

	// Accidental is the root accidental, "#"/"b" or empty (field 1).
	Accidental string

	// Root is the scale-degree digit "1".."7" (field 2).
	Root string

	// Tail is the trailing modifier text including any inversion (field 3).
	Tail string

	// Trailing is trailing filler after the chord (field 4).
	Trailing string

	// Start and End delimit the matched substring (Leading included) in the
	// paren-stripped line, as byte offsets. line[Start:End] == Text().
	Start int
	End   int
}

// Text reconstructs the exact matched substring from the five fields.
func (m Match) Text() string {
	return m.Leading + m.Accidental + m.Root + m.Tail + m.Trailing
}

// DegreeToken returns the accidental+digit pair used as the translation
// table key for this chord's root.
func (m Match) DegreeToken() string {
	return m.Accidental + m.Root
}

// FindChords scans a line and returns every chord match in left-to-right
// order. Tokens that do not fit the grammar are simply not chords and are
// left for the lyrics; that is a silent non-match, not an error.
//
// The caller is expected to have stripped parentheses from the line first
// (see formatter.stripParens); FindChords itself performs no normalization.
func FindChords(line string) []Match {
	var matches []Match

	i := 0
	for i < len(line) {
		wsStart := i
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		tokStart := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' {
			i++
		}
		token := line[tokStart:i]
		if token == "" {
			continue
		}

		sub := tokenRe.FindStringSubmatch(token)
		if sub == nil {
			continue
		}

		matches = append(matches, Match{
			Leading:    line[wsStart:tokStart],
			Accidental: sub[1],
			Root:       sub[2],
			Tail:       sub[3],
			Trailing:   sub[4],
			Start:      wsStart,
			End:        i,
		})
	}

	return matches
}
