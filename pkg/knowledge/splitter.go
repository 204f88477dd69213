package knowledge

// Default windowing parameters. Boundaries are purely length-based; the
// overlap preserves context across split points.
const (
	DefaultChunkSize = 200
	DefaultOverlap   = 20
)

// Splitter cuts entries into fixed-size overlapping windows so no single
// index entry exceeds the embedding model's useful context.
type Splitter struct {
	ChunkSize int
	Overlap   int
}

func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	return &Splitter{ChunkSize: chunkSize, Overlap: overlap}
}

// Split produces the chunks for one entry. Entries no longer than the
// window yield exactly one chunk equal to the entry itself. Each chunk
// keeps the full entry as its source for recall.
func (s *Splitter) Split(entry Entry) []Chunk {
	runes := []rune(entry)
	if len(runes) <= s.ChunkSize {
		return []Chunk{{Text: entry, Source: entry}}
	}

	step := s.ChunkSize - s.Overlap
	if step <= 0 {
		step = s.ChunkSize // fallback if overlap >= chunk size
	}

	var chunks []Chunk
	totalLen := len(runes)
	for i := 0; i < totalLen; i += step {
		end := i + s.ChunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, Chunk{
			Text:   string(runes[i:end]),
			Source: entry,
		})

		if end == totalLen {
			break
		}
	}

	return chunks
}

// SplitAll chunks every entry in order. Splitting never reduces volume:
// the result always has at least one chunk per entry.
func (s *Splitter) SplitAll(entries []Entry) []Chunk {
	var chunks []Chunk
	for _, entry := range entries {
		chunks = append(chunks, s.Split(entry)...)
	}
	return chunks
}
