package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindChords_SingleChord(t *testing.T) {
	matches := FindChords("1")

	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "", m.Leading)
	assert.Equal(t, "", m.Accidental)
	assert.Equal(t, "1", m.Root)
	assert.Equal(t, "", m.Tail)
	assert.Equal(t, "", m.Trailing)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, 1, m.End)
}

func TestFindChords_FieldDecomposition(t *testing.T) {
	tests := []struct {
		token      string
		accidental string
		root       string
		tail       string
	}{
		{"1", "", "1", ""},
		{"b3", "b", "3", ""},
		{"#4", "#", "4", ""},
		{"4sus", "", "4", "sus"},
		{"5m7", "", "5", "m7"},
		{"1/3", "", "1", "/3"},
		{"b7/2", "b", "7", "/2"},
		{"1△7", "", "1", "△7"},
		{"2ø", "", "2", "ø"},
		{"6m7b5", "", "6", "m7b5"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			matches := FindChords(tt.token)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.accidental, matches[0].Accidental)
			assert.Equal(t, tt.root, matches[0].Root)
			assert.Equal(t, tt.tail, matches[0].Tail)
		})
	}
}

func TestFindChords_NonChordTokensSkipped(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"lyrics only", "Amazing grace how sweet the sound", 0},
		{"digit out of range", "8 9 0", 0},
		{"letter prefix", "x1", 0},
		{"empty line", "", 0},
		{"whitespace only", "    ", 0},
		{"chords among lyrics", "1  Amazing  4  grace", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FindChords(tt.line), tt.want)
		})
	}
}

func TestFindChords_LeadingWhitespaceConsumed(t *testing.T) {
	matches := FindChords("   1sus    b3")

	require.Len(t, matches, 2)
	assert.Equal(t, "   ", matches[0].Leading)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, "    ", matches[1].Leading)
}

// Concatenating the five fields must reproduce the matched span exactly.
// Every downstream offset calculation depends on this.
func TestFindChords_RoundTrip(t *testing.T) {
	lines := []string{
		"1",
		"   b3sus   #4   1/3",
		"1  Amazing  4  grace",
		"\t5m7\t\t6",
		"Intro: 1 4 5",
	}

	for _, line := range lines {
		for _, m := range FindChords(line) {
			assert.Equal(t, line[m.Start:m.End], m.Text(), "line %q", line)
		}
	}
}

func TestFindChords_TrailingFillerSplit(t *testing.T) {
	// Markup braces after the chord symbols land in Trailing, not Tail.
	matches := FindChords("5}}")

	require.Len(t, matches, 1)
	assert.Equal(t, "", matches[0].Tail)
	assert.Equal(t, "}}", matches[0].Trailing)
	assert.Equal(t, "5}}", matches[0].Text())
}

func TestMatch_DegreeToken(t *testing.T) {
	assert.Equal(t, "b3", Match{Accidental: "b", Root: "3"}.DegreeToken())
	assert.Equal(t, "5", Match{Root: "5"}.DegreeToken())
}
