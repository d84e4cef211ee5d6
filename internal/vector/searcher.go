package vector

import (
	"context"
	"fmt"
	"sort"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

// Embedder turns text into a vector. Satisfied by the llm client.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NoteSource lists a user's notes. Satisfied by repository.NoteRepo.
type NoteSource interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Note, error)
}

// Searcher ranks a user's notes by similarity to a query. Implementations
// may fail (provider down, no embeddings stored); callers are expected to
// fall back to recency.
type Searcher interface {
	Search(ctx context.Context, query string, k int, userID string) ([]*domain.Note, error)
}

type embeddingSearcher struct {
	embedder Embedder
	notes    NoteSource
}

// NewSearcher creates a Searcher that embeds the query and ranks the user's
// stored note embeddings by cosine similarity.
func NewSearcher(embedder Embedder, notes NoteSource) Searcher {
	return &embeddingSearcher{embedder: embedder, notes: notes}
}

func (s *embeddingSearcher) Search(ctx context.Context, query string, k int, userID string) ([]*domain.Note, error) {
	qv, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	all, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	type scored struct {
		note  *domain.Note
		score float64
	}
	var candidates []scored
	for _, n := range all {
		if n.Embedding == nil {
			continue
		}
		candidates = append(candidates, scored{note: n, score: Cosine(qv, n.Embedding)})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no embedded notes for user %s", userID)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	result := make([]*domain.Note, 0, k)
	for _, c := range candidates[:k] {
		result = append(result, c.note)
	}
	return result, nil
}
