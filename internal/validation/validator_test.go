package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwcorell/musiccharts/internal/chord"
)

func TestValidateKeys_AllValid(t *testing.T) {
	assert.NoError(t, ValidateKeys([]string{"NNS", "C", "Gb"}))
	assert.NoError(t, ValidateKeys([]string{"A"}))
}

func TestValidateKeys_ReportsEveryBadKey(t *testing.T) {
	err := ValidateKeys([]string{"C", "H", "x", "Db"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keys found: H,x")
}

func TestValidateKeys_CaseSensitive(t *testing.T) {
	err := ValidateKeys([]string{"c"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "c")
}

func TestValidateKeys_EmptyList(t *testing.T) {
	err := ValidateKeys(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no keys requested")
	assert.Contains(t, err.Error(), "NNS")
}

func TestFormatChordErrors_Empty(t *testing.T) {
	assert.Equal(t, "", FormatChordErrors(nil))
}

func TestFormatChordErrors_Listing(t *testing.T) {
	errs := []*chord.ChordError{
		{Chord: "2/45", LineNum: 3},
		{Chord: "1sus/3/5", LineNum: 117},
	}

	want := "Error: invalid chord syntax found\n" +
		"----------------------------------\n" +
		"Line 3  : 2/45\n" +
		"Line 117: 1sus/3/5\n"
	assert.Equal(t, want, FormatChordErrors(errs))
}
