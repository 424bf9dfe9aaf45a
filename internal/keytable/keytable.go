// =============================================================================
// musiccharts - Key Table Module
// =============================================================================
//
// This module owns the translation table that maps Nashville Number System
// (NNS) scale-degree tokens to letter-name chord roots in each of the 12
// lettered keys. The table is the single source of truth for transposition:
// every degree token the chord tokenizer can produce has an entry for every
// lettered key, and the NNS pseudo-key maps every token to itself.
//
// TABLE CONSTRUCTION:
//   The table is generated once at package load from the major-scale interval
//   pattern rather than hand-written. Spelling rules:
//     - Natural degrees use the key's preferred chromatic row (flat keys
//       Ab/Bb/Db/Eb/F/Gb spell with flats, the rest with sharps).
//     - Degrees with an explicit 'b' always spell from the flat row.
//     - Degrees with an explicit '#' always spell from the sharp row.
//   This yields practical chart spellings (key Gb degree 4 is "B", not "Cb").
//
// CONCURRENCY:
//   The table is immutable after construction and safe for unsynchronized
//   concurrent reads; each key pass may run in its own goroutine.
//
// =============================================================================

package keytable

import "fmt"

// NNSKey is the pseudo-key that keeps chords in scale-degree notation.
const NNSKey = "NNS"

// =============================================================================
// ERROR TYPES
// =============================================================================

// UnknownKeyError is returned when a requested key is not one of the 13
// recognized values. This is a user-facing configuration error.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q (valid keys: NNS, Ab, A, Bb, B, C, Db, D, Eb, E, F, Gb, G)", e.Key)
}

// UnknownDegreeError is returned when a degree token has no translation
// entry. If the tokenizer grammar and the table are in sync this is
// unreachable; it indicates a programming defect, not a user error, and must
// never be swallowed.
type UnknownDegreeError struct {
	Key    string
	Degree string
}

func (e *UnknownDegreeError) Error() string {
	return fmt.Sprintf("internal: no translation for degree %q in key %q", e.Degree, e.Key)
}

// =============================================================================
// TABLE DATA
// =============================================================================

// letteredKeys lists the 12 lettered keys in the order the CLI advertises
// them. NNS is handled separately and always sorts first.
var letteredKeys = []string{"Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G"}

// Chromatic rows indexed by semitone offset from C.
var (
	flatRow  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
	sharpRow = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
)

// majorScaleOffsets holds the semitone offset of each scale degree (1-7)
// from the key root.
var majorScaleOffsets = [7]int{0, 2, 4, 5, 7, 9, 11}

// flatKeys marks the keys whose natural degrees are spelled with flats.
var flatKeys = map[string]bool{
	"Ab": true, "Bb": true, "Db": true, "Eb": true, "F": true, "Gb": true,
}

// rootSemitone gives the chromatic position of each key's tonic.
var rootSemitone = map[string]int{
	"C": 0, "Db": 1, "D": 2, "Eb": 3, "E": 4, "F": 5,
	"Gb": 6, "G": 7, "Ab": 8, "A": 9, "Bb": 10, "B": 11,
}

// chords is the full translation table: key -> degree token -> root text.
// Built once by init, read-only thereafter.
var chords map[string]map[string]string

func init() {
	chords = make(map[string]map[string]string, len(letteredKeys)+1)

	// NNS maps every producible token to itself; the transposer keeps the
	// degree digit on the baseline and only superscripts around it.
	nns := make(map[string]string, 21)
	for degree := 1; degree <= 7; degree++ {
		for _, accidental := range []string{"", "b", "#"} {
			token := fmt.Sprintf("%s%d", accidental, degree)
			nns[token] = token
		}
	}
	chords[NNSKey] = nns

	for _, key := range letteredKeys {
		table := make(map[string]string, 21)
		for degree := 1; degree <= 7; degree++ {
			natural := rootSemitone[key] + majorScaleOffsets[degree-1]
			for _, accidental := range []string{"", "b", "#"} {
				semitone := natural
				row := &sharpRow
				switch accidental {
				case "b":
					semitone--
					row = &flatRow
				case "#":
					semitone++
				default:
					if flatKeys[key] {
						row = &flatRow
					}
				}
				token := fmt.Sprintf("%s%d", accidental, degree)
				table[token] = row[((semitone%12)+12)%12]
			}
		}
		chords[key] = table
	}
}

// =============================================================================
// LOOKUP FUNCTIONS
// =============================================================================

// Translate returns the chord-root text for a degree token in the given key.
// For the NNS key the token is returned unchanged.
func Translate(key, degree string) (string, error) {
	table, ok := chords[key]
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	root, ok := table[degree]
	if !ok {
		return "", &UnknownDegreeError{Key: key, Degree: degree}
	}
	return root, nil
}

// IsValidKey reports whether key is one of the 13 recognized values.
func IsValidKey(key string) bool {
	_, ok := chords[key]
	return ok
}

// ListValidKeys returns the recognized key identifiers, NNS first, then the
// lettered keys in circle-of-fourths-free chart order (Ab through G). The
// returned slice is a copy; callers may mutate it freely.
func ListValidKeys() []string {
	keys := make([]string, 0, len(letteredKeys)+1)
	keys = append(keys, NNSKey)
	keys = append(keys, letteredKeys...)
	return keys
}
