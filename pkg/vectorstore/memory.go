package vectorstore

import (
	"errors"
	"sort"
	"sync"

	"ums-chatbot-be/pkg/knowledge"
)

// ScoredChunk is one nearest-neighbor candidate. Distance is cosine
// distance (1 - similarity); smaller means closer.
type ScoredChunk struct {
	Chunk    knowledge.Chunk
	Distance float32
}

// Store is an in-memory vector index using brute-force cosine search.
// Vectors are expected to be L2-normalized, so similarity is a dot
// product. The store is filled once at startup and read-only afterwards;
// the mutex guards the build/serve transition.
type Store struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float32
	chunks    []knowledge.Chunk
}

func NewStore() *Store { return &Store{} }

func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.chunks = nil
	return nil
}

func (s *Store) Insert(chunks []knowledge.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Search returns the topK nearest chunks by cosine distance, ascending
// (closest first). An empty store yields an empty result, not an error.
func (s *Store) Search(vector []float32, topK int) ([]ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		return nil, errors.New("topK must be positive")
	}
	if len(s.vectors) == 0 {
		return nil, nil
	}
	if len(vector) != s.dimension {
		return nil, errors.New("query vector dimension mismatch")
	}

	results := make([]ScoredChunk, 0, len(s.vectors))
	for i := range s.vectors {
		results = append(results, ScoredChunk{
			Chunk:    s.chunks[i],
			Distance: 1 - dot(s.vectors[i], vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
