// =============================================================================
// musiccharts - Line Formatter
// =============================================================================
//
// This module orchestrates the per-line formatting pipeline. Each line moves
// through four sequential phases, never branching back:
//
//   1. Intro phase : "Intro: ..." markers re-rendered right-justified bold;
//                    when the previous line carried a marker, the current
//                    line's trailing chord group is right-justified too so
//                    the intro chords sit under the marker. The group starts
//                    at the last run of two or more spaces, or at column 0
//                    when no such run exists. The wrap markup itself is
//                    inserted only after the chord phase, so the wrapped
//                    chords are transposed like any others.
//   2. Title phase : the first "Title{...}" wrapper becomes underlined,
//                    enlarged title markup. At most one title per line;
//                    later wrappers are left to the tail text verbatim.
//   3. Label phase : configured section-label keywords (Verse, Chorus, ...)
//                    bolded in place. A keyword immediately followed by ':'
//                    belongs to an intro marker and is skipped, as is a
//                    keyword that is already bolded.
//   4. Chord phase : tokenize, transpose, substitute right-to-left by byte
//                    offset, collecting chord syntax errors.
//
// CROSS-LINE STATE:
//   A single boolean (previous line ended with an intro marker) is threaded
//   explicitly through Context rather than held as module state. It resets
//   to the zero value at the start of each key pass.
//
// Title and label substitutions are recorded as protected spans so the chord
// phase never transposes a digit inside a title or a section label ("Verse
// 1" stays "Verse 1" in every key).
//
// =============================================================================

package formatter

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jwcorell/musiccharts/internal/chord"
)

// introRe matches an intro marker: the keyword with a colon and everything
// to the end of the line.
var introRe = regexp.MustCompile(`Intro:.*`)

// titleRe matches a Title{...} wrapper and captures the title text and the
// remainder of the line after the closing brace.
var titleRe = regexp.MustCompile(`Title\{([^}]*)\}(.*)`)

// continuationGapRe locates runs of two or more spaces; the text after the
// last such run is the trailing chord group of an intro continuation line.
var continuationGapRe = regexp.MustCompile(`  +`)

// =============================================================================
// CONTEXT AND RESULT
// =============================================================================

// Context carries the cross-line formatting state supplied by the caller.
// The zero value is the correct state for the first line of a key pass.
type Context struct {
	// NextLineAfterIntro is true when the previous line carried an intro
	// marker. It affects markup for the current line only.
	NextLineAfterIntro bool
}

// Result is the outcome of formatting one line.
type Result struct {
	// Line is the formatted line, ready for the typesetting stage.
	Line string

	// NextLineAfterIntro is the outgoing cross-line flag: true when this
	// line carried an intro marker.
	NextLineAfterIntro bool

	// Errors holds the chord syntax errors found on this line. The caller
	// aggregates them across the key pass.
	Errors []*chord.ChordError
}

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter formats chart lines for one configured label set. It holds no
// per-line or per-pass state and is safe for concurrent use across key
// passes.
type Formatter struct {
	labelRe *regexp.Regexp
}

// New builds a Formatter for the given section-label keyword set. An empty
// set disables the label phase.
func New(labels []string) *Formatter {
	f := &Formatter{}
	if len(labels) > 0 {
		quoted := make([]string, len(labels))
		for i, l := range labels {
			quoted[i] = regexp.QuoteMeta(l)
		}
		// Keyword with an optional trailing number, e.g. "Verse 2".
		f.labelRe = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b(?: ?[0-9]+)?`)
	}
	return f
}

// span marks a half-open byte range of the working line that the chord phase
// must not rewrite.
type span struct {
	start, end int
}

// FormatLine runs the four-phase pipeline over one raw line.
//
// lineNum is 1-based and is used only for chord error reporting. Chord
// syntax errors are collected into the Result; the error return is reserved
// for internal consistency faults (a tokenizer-producible degree missing
// from the translation table), which abort the pass loudly.
func (f *Formatter) FormatLine(line string, lineNum int, key string, ctx Context) (Result, error) {
	// Parentheses around chords are decorative and invisible to every
	// phase; drop them up front and never re-insert them.
	line = strings.NewReplacer("(", "", ")", "").Replace(line)

	var protected []span

	// =========================================================================
	// PHASE 1: INTRO
	// =========================================================================

	introFound := false
	if loc := introRe.FindStringIndex(line); loc != nil {
		introFound = true
		line = line[:loc[0]] + `\hfill{\textbf{` + line[loc[0]:loc[1]] + `}}` + line[loc[1]:]
	}

	// The continuation wrap is only located here; the markup is inserted
	// after the chord phase so a chord at the wrap position is still seen by
	// the tokenizer. contWrap tracks the insertion offset through every
	// later substitution.
	contWrap := -1
	if ctx.NextLineAfterIntro && strings.TrimSpace(line) != "" {
		contWrap = 0
		if gaps := continuationGapRe.FindAllStringIndex(line, -1); gaps != nil {
			contWrap = gaps[len(gaps)-1][0]
		}
	}

	// =========================================================================
	// PHASE 2: TITLE
	// =========================================================================

	if m := titleRe.FindStringSubmatchIndex(line); m != nil {
		title := line[m[2]:m[3]]
		tail := line[m[4]:m[5]]
		line = `\underline{\bigtitle{` + title + `}}` + tail
		// A title line is never a chord continuation.
		contWrap = -1
		protected = append(protected, span{
			start: 0,
			end:   len(`\underline{\bigtitle{`) + len(title) + len(`}}`),
		})
	}

	// =========================================================================
	// PHASE 3: LABELS
	// =========================================================================

	if f.labelRe != nil {
		locs := f.labelRe.FindAllStringIndex(line, -1)
		// Right-to-left so earlier offsets stay valid.
		for i := len(locs) - 1; i >= 0; i-- {
			start, end := locs[i][0], locs[i][1]
			if end < len(line) && line[end] == ':' {
				// Part of an intro marker, not a section label.
				continue
			}
			if inProtected(protected, start, end) {
				continue
			}
			if strings.HasSuffix(line[:start], `\textbf{`) {
				// Already bolded; a second pass must not double-wrap.
				continue
			}
			replacement := `\textbf{` + line[start:end] + `}`
			line = line[:start] + replacement + line[end:]
			shiftSpans(protected, end, len(replacement)-(end-start))
			if contWrap >= end {
				contWrap += len(replacement) - (end - start)
			}
			protected = append(protected, span{start: start, end: start + len(replacement)})
		}
	}

	// =========================================================================
	// PHASE 4: CHORDS
	// =========================================================================

	matches := chord.FindChords(line)
	var chordErrs []*chord.ChordError

	// Right-to-left: replacing by offset never invalidates the offsets of
	// matches still pending to the left.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if inProtected(protected, m.Start, m.End) {
			continue
		}

		rep, err := chord.Transpose(m, key, lineNum)
		if err != nil {
			var cerr *chord.ChordError
			if errors.As(err, &cerr) {
				chordErrs = append(chordErrs, cerr)
				continue
			}
			return Result{}, err
		}

		end := m.End
		if rep.RemoveSpace && end < len(line) && line[end] == ' ' {
			end++
		}
		line = line[:m.Start] + rep.Text + line[end:]
		switch {
		case contWrap >= end:
			contWrap += len(rep.Text) - (end - m.Start)
		case contWrap > m.Start:
			// The wrap point sat inside the consumed span; the remaining gap
			// now starts right after the replacement.
			contWrap = m.Start + len(rep.Text)
		}
	}

	if contWrap >= 0 {
		line = line[:contWrap] + `\hfill{\textbf{` + line[contWrap:] + `}}`
	}

	// Errors were collected right-to-left; report them in line order.
	for l, r := 0, len(chordErrs)-1; l < r; l, r = l+1, r-1 {
		chordErrs[l], chordErrs[r] = chordErrs[r], chordErrs[l]
	}

	return Result{
		Line:               line,
		NextLineAfterIntro: introFound,
		Errors:             chordErrs,
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// inProtected reports whether [start,end) overlaps any protected span.
func inProtected(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

// shiftSpans moves every span at or after pos by delta, after an in-place
// replacement changed the line length.
func shiftSpans(spans []span, pos, delta int) {
	for i := range spans {
		if spans[i].start >= pos {
			spans[i].start += delta
			spans[i].end += delta
		}
	}
}
