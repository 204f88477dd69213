package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"ums-chatbot-be/internal/dto"
	"ums-chatbot-be/internal/pkg/apperr"
	"ums-chatbot-be/internal/pkg/logger"
	"ums-chatbot-be/pkg/embedding"
	"ums-chatbot-be/pkg/knowledge"
	"ums-chatbot-be/pkg/vectorstore"
)

const (
	// AnswerNoQuestion mirrors the public contract: an empty question is a
	// 200 with a prompt, not an error, when asked directly.
	AnswerNoQuestion = "❌ No question provided."
	// AnswerNotFound is the fixed fallback when the index has no candidates.
	AnswerNotFound = "Sorry, no relevant answer found."
)

type IRetrievalService interface {
	BuildIndex(ctx context.Context) error
	Search(ctx context.Context, question string, k int) ([]vectorstore.ScoredChunk, error)
	Answer(ctx context.Context, question string) (*dto.QueryResponse, error)
	Health() *dto.RagHealthResponse
}

type retrievalService struct {
	kbPath            string
	topK              int
	splitter          *knowledge.Splitter
	embeddingProvider embedding.EmbeddingProvider
	store             *vectorstore.Store
	answerCache       *cache.Cache
	log               logger.ILogger

	ready          atomic.Bool
	totalDocuments int
}

func NewRetrievalService(
	kbPath string,
	topK int,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IRetrievalService {
	return &retrievalService{
		kbPath:            kbPath,
		topK:              topK,
		splitter:          knowledge.NewSplitter(knowledge.DefaultChunkSize, knowledge.DefaultOverlap),
		embeddingProvider: embeddingProvider,
		store:             vectorstore.NewStore(),
		// The index is immutable for the process lifetime, so cached
		// answers never go stale; the TTL just bounds memory.
		answerCache: cache.New(1*time.Hour, 10*time.Minute),
		log:         log,
	}
}

// BuildIndex runs the startup pipeline: load, chunk, embed, index. It
// returns an error instead of exiting so the entry point decides whether
// to abort. No partial index is ever exposed: readiness flips only after
// every chunk is embedded and inserted.
func (s *retrievalService) BuildIndex(ctx context.Context) error {
	entries, err := knowledge.LoadEntries(s.kbPath)
	if err != nil {
		return apperr.Wrap(apperr.KindConfiguration, "knowledge base load failed", err)
	}
	s.totalDocuments = len(entries)

	chunks := s.splitter.SplitAll(entries)
	s.log.Info("retrieval", "knowledge base loaded", map[string]interface{}{
		"entries": len(entries),
		"chunks":  len(chunks),
	})

	if len(chunks) > 0 {
		vectors := make([][]float32, 0, len(chunks))
		for _, chunk := range chunks {
			res, err := s.embeddingProvider.Generate(ctx, chunk.Text, embedding.TaskRetrievalDocument)
			if err != nil {
				return apperr.Wrap(apperr.KindInternal, "embedding knowledge base failed", err)
			}
			vectors = append(vectors, res.Embedding.Values)
		}

		if err := s.store.Init(len(vectors[0])); err != nil {
			return apperr.Wrap(apperr.KindInternal, "vector store init failed", err)
		}
		if err := s.store.Insert(chunks, vectors); err != nil {
			return apperr.Wrap(apperr.KindInternal, "vector store insert failed", err)
		}
	}

	s.ready.Store(true)
	s.log.Info("retrieval", "vector store ready", map[string]interface{}{
		"total_documents": s.totalDocuments,
		"indexed_chunks":  s.store.Len(),
	})
	return nil
}

// Search embeds the question and returns the k nearest chunks, closest
// first. The embedding space matches index build time because the same
// provider instance is used.
func (s *retrievalService) Search(ctx context.Context, question string, k int) ([]vectorstore.ScoredChunk, error) {
	if !s.ready.Load() {
		return nil, apperr.New(apperr.KindNotReady, "vector store is not ready")
	}

	res, err := s.embeddingProvider.Generate(ctx, question, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "embedding question failed", err)
	}

	results, err := s.store.Search(res.Embedding.Values, k)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "vector search failed", err)
	}
	return results, nil
}

// Answer implements the single-best-match contract: the closest chunk's
// source text, or the fixed fallback when nothing was retrieved.
func (s *retrievalService) Answer(ctx context.Context, question string) (*dto.QueryResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return &dto.QueryResponse{Answer: AnswerNoQuestion}, nil
	}

	if cached, found := s.answerCache.Get(question); found {
		return &dto.QueryResponse{Answer: cached.(string)}, nil
	}

	results, err := s.Search(ctx, question, s.topK)
	if err != nil {
		return nil, err
	}

	answer := AnswerNotFound
	if len(results) > 0 {
		answer = results[0].Chunk.Source
	}

	s.answerCache.Set(question, answer, cache.DefaultExpiration)
	return &dto.QueryResponse{Answer: answer}, nil
}

func (s *retrievalService) Health() *dto.RagHealthResponse {
	return &dto.RagHealthResponse{
		Status:           "UMS retrieval service is running",
		VectorstoreReady: s.ready.Load(),
		TotalDocuments:   s.totalDocuments,
	}
}
