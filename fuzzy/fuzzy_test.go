package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityBounds(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("identical text", "identical text"))
	assert.Equal(t, 0.0, Similarity("anything", ""))
	assert.Equal(t, 0.0, Similarity("", "anything"))
	assert.Greater(t, Similarity("hello world", "hello worlds"), 0.9)
	assert.Less(t, Similarity("hello", "goodbye"), 0.5)
}

func TestSimilaritySymmetric(t *testing.T) {
	a, b := "the quick brown fox", "the quack brown fix"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}

func TestFindExactContent(t *testing.T) {
	content := "The mitochondria is the powerhouse of the cell, as every textbook says."
	m := Find(content, "powerhouse of the cell", 0)

	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.Score, 0.9)
	// The coarse window step allows a few characters of slack on either
	// side; the recovered range must still cover the heart of the excerpt.
	target := len("The mitochondria is the ")
	assert.LessOrEqual(t, m.Start, target+3)
	assert.Greater(t, m.End, target+len("powerhouse of the"))
}

func TestFindNoisyExcerpt(t *testing.T) {
	content := "Convergence follows from the dominated convergence theorem applied to the sequence."
	// Excerpt with punctuation noise and casing differences.
	m := Find(content, "Dominated Convergence THEOREM, applied", 0)

	require.NotNil(t, m)
	assert.Greater(t, m.Score, 0.7)
	overlap := content[m.Start:m.End]
	assert.Contains(t, overlap, "convergence theorem")
}

func TestFindRejectsShortExcerpt(t *testing.T) {
	assert.Nil(t, Find("plenty of content to search through", "tiny", 0))
}

func TestFindBelowThreshold(t *testing.T) {
	content := "completely unrelated prose about gardening and weather patterns"
	assert.Nil(t, Find(content, "quantum chromodynamics lattice simulations", 0.7))
}

func TestFindEmptyContent(t *testing.T) {
	assert.Nil(t, Find("", "a reasonably long excerpt here", 0))
}

func TestRefineStart(t *testing.T) {
	content := "abc introduction to the topic"

	// Over-inclusive start moves forward onto the excerpt's first word.
	assert.Equal(t, 4, refineStart(content, "introduction to the topic", 0))

	// An exact start stays put.
	assert.Equal(t, 4, refineStart(content, "introduction to the topic", 4))

	// A word beyond the tolerance window is left alone.
	far := "0123456789012345678901234567890 introduction"
	assert.Equal(t, 0, refineStart(far, "introduction", 0))
}

func TestNormalizeAlnum(t *testing.T) {
	norm, posMap := normalizeAlnum("Hello, World!")

	assert.Equal(t, "hello world", norm)
	require.Len(t, posMap, len(norm))
	// 'w' of World maps back to index 7 in the original.
	assert.Equal(t, 7, posMap[6])
	for i := 1; i < len(posMap); i++ {
		assert.Greater(t, posMap[i], posMap[i-1])
	}
}
