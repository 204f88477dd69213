package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShortEntryProducesSingleChunk(t *testing.T) {
	s := NewSplitter(200, 20)
	entry := "Login -> UmsHome -> Change Password -> Change UMS Password"

	chunks := s.Split(entry)

	require.Len(t, chunks, 1)
	assert.Equal(t, entry, chunks[0].Text)
	assert.Equal(t, entry, chunks[0].Source)
}

func TestSplitEntryEqualToWindowProducesSingleChunk(t *testing.T) {
	s := NewSplitter(200, 20)
	entry := strings.Repeat("a", 200)

	chunks := s.Split(entry)

	require.Len(t, chunks, 1)
	assert.Equal(t, entry, chunks[0].Text)
}

func TestSplitLongEntryOverlaps(t *testing.T) {
	s := NewSplitter(200, 20)
	entry := strings.Repeat("x", 500)

	chunks := s.Split(entry)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Text), 200)
		assert.Equal(t, entry, chunk.Source)
	}

	// Consecutive windows share the overlap region
	first := []rune(chunks[0].Text)
	second := []rune(chunks[1].Text)
	assert.Equal(t, string(first[len(first)-20:]), string(second[:20]))
}

func TestSplitAllNeverReducesVolume(t *testing.T) {
	s := NewSplitter(200, 20)
	entries := []Entry{
		"short one",
		strings.Repeat("long entry ", 60),
		"another short one",
	}

	chunks := s.SplitAll(entries)

	assert.GreaterOrEqual(t, len(chunks), len(entries))
}

func TestSplitFallsBackWhenOverlapExceedsWindow(t *testing.T) {
	s := NewSplitter(10, 15)
	chunks := s.Split(strings.Repeat("y", 35))

	// Step falls back to the window size, so windows simply tile
	require.Len(t, chunks, 4)
	assert.Equal(t, strings.Repeat("y", 5), chunks[3].Text)
}
