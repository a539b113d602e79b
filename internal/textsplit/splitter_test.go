package textsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_EmptyAndBlank(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Nil(t, Split("   "))
	assert.Nil(t, Split("\n\t\n"))
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	chunks := Split("a short paragraph")
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short paragraph", chunks[0])
}

func TestSplit_NoEmptyChunksAndSizeBound(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200)
	s := New(100, 20)

	chunks := s.Split(text)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.NotEmpty(t, c)
		assert.LessOrEqual(t, len([]rune(c)), 100)
	}
}

func TestSplit_ReconstructsOriginal(t *testing.T) {
	text := "First paragraph about learning goals.\n\n" +
		strings.Repeat("A sentence in the body of the document. ", 30) +
		"\n\nFinal paragraph with a conclusion."
	overlap := 20
	s := New(120, overlap)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)

	// Every consecutive pair shares exactly `overlap` characters, so the
	// original text is the first chunk plus each tail beyond the overlap.
	var b strings.Builder
	b.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		runes := []rune(c)
		require.Greater(t, len(runes), overlap)
		b.WriteString(string(runes[overlap:]))
	}
	assert.Equal(t, text, b.String())
}

func TestSplit_OverlapSharedBetweenNeighbors(t *testing.T) {
	text := strings.Repeat("word ", 500)
	overlap := 15
	s := New(80, overlap)

	chunks := s.Split(text)
	require.Greater(t, len(chunks), 2)

	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1])
		cur := []rune(chunks[i])
		tail := string(prev[len(prev)-overlap:])
		head := string(cur[:overlap])
		assert.Equal(t, tail, head, "chunk %d should start with the tail of chunk %d", i, i-1)
	}
}

func TestSplit_PrefersParagraphBoundary(t *testing.T) {
	para1 := strings.Repeat("a", 60) + "\n\n"
	para2 := strings.Repeat("b", 200)
	s := New(100, 10)

	chunks := s.Split(para1 + para2)
	require.NotEmpty(t, chunks)
	assert.Equal(t, para1, chunks[0])
}

func TestSplit_HardCutWithoutSeparators(t *testing.T) {
	text := strings.Repeat("x", 250)
	s := New(100, 10)

	chunks := s.Split(text)
	require.NotEmpty(t, chunks)
	assert.Equal(t, 100, len(chunks[0]))
}

func TestSplit_DocumentOrder(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta. ", 100)
	s := New(90, 10)

	chunks := s.Split(text)
	pos := 0
	for _, c := range chunks {
		idx := strings.Index(text[pos:], c)
		require.GreaterOrEqual(t, idx, 0, "chunk must appear at or after the previous one")
		pos += idx
	}
}
