package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"NNS", "C", "Gb"}, splitKeys("NNS,C,Gb"))
	assert.Equal(t, []string{"C", "G"}, splitKeys(" C , G ,"))
	assert.Empty(t, splitKeys(""))
}

func TestKeyIndex(t *testing.T) {
	keys := []string{"NNS", "C", "G"}

	assert.Equal(t, 0, keyIndex(keys, "NNS"))
	assert.Equal(t, 2, keyIndex(keys, "G"))
	// Unknown keys sort last.
	assert.Equal(t, 3, keyIndex(keys, "Ab"))
}
