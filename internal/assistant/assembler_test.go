package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/testutil"
)

// fakeNoteRepo implements the ListByUser slice of repository.NoteRepo used
// by the assembler.
type fakeNoteRepo struct {
	notes map[string][]*domain.Note
	err   error
}

func (f *fakeNoteRepo) Create(ctx context.Context, n *domain.Note) error   { return nil }
func (f *fakeNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return nil, nil
}
func (f *fakeNoteRepo) Delete(ctx context.Context, id string) error       { return nil }
func (f *fakeNoteRepo) DeleteByUser(ctx context.Context, id string) error { return nil }

func (f *fakeNoteRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.notes[userID], nil
}

type fakeSearcher struct {
	notes []*domain.Note
	err   error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, k int, userID string) ([]*domain.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.notes, nil
}

func note(userID, text string) *domain.Note {
	return testutil.NewTestNote(userID, text)
}

func TestAssembler_RecencyFallbackTakesFourNewest(t *testing.T) {
	// Repo returns newest first; the assembler must keep that order and cap
	// at four.
	repo := &fakeNoteRepo{notes: map[string][]*domain.Note{
		"u1": {
			note("u1", "fifth"), note("u1", "fourth"), note("u1", "third"),
			note("u1", "second"), note("u1", "first"),
		},
	}}
	a := NewAssembler(nil, repo, zap.NewNop().Sugar())

	got := a.Notes(context.Background(), "question", "u1")
	assert.Equal(t, "fifth\nfourth\nthird\nsecond", got)
}

func TestAssembler_SearcherFailureFallsBackToRecency(t *testing.T) {
	repo := &fakeNoteRepo{notes: map[string][]*domain.Note{
		"u1": {note("u1", "recent note")},
	}}
	searcher := &fakeSearcher{err: errors.New("no embedded notes")}
	a := NewAssembler(searcher, repo, zap.NewNop().Sugar())

	got := a.Notes(context.Background(), "question", "u1")
	assert.Equal(t, "recent note", got)
}

func TestAssembler_SearcherResultsPreferred(t *testing.T) {
	repo := &fakeNoteRepo{notes: map[string][]*domain.Note{
		"u1": {note("u1", "recent but irrelevant")},
	}}
	searcher := &fakeSearcher{notes: []*domain.Note{note("u1", "semantically close")}}
	a := NewAssembler(searcher, repo, zap.NewNop().Sugar())

	got := a.Notes(context.Background(), "question", "u1")
	assert.Equal(t, "semantically close", got)
}

func TestAssembler_TotalFailureYieldsEmptyString(t *testing.T) {
	repo := &fakeNoteRepo{err: errors.New("db gone")}
	searcher := &fakeSearcher{err: errors.New("provider gone")}
	a := NewAssembler(searcher, repo, zap.NewNop().Sugar())

	got := a.Notes(context.Background(), "question", "u1")
	assert.Equal(t, "", got)
}

func TestAssembler_UserIsolation(t *testing.T) {
	repo := &fakeNoteRepo{notes: map[string][]*domain.Note{
		"u1": {note("u1", "mine")},
		"u2": {note("u2", "theirs")},
	}}
	a := NewAssembler(nil, repo, zap.NewNop().Sugar())

	got := a.Notes(context.Background(), "question", "u1")
	assert.Equal(t, "mine", got)
	assert.NotContains(t, got, "theirs")
}

func TestProfileSummary_Deterministic(t *testing.T) {
	p := testutil.NewTestProfile("Alex",
		testutil.WithAge(30),
		testutil.WithWeight(75.5),
		testutil.WithGender("Male"),
		testutil.WithGoals("Muscle Gain", "Stay Active"),
		testutil.WithNutrition(2500, 150, 70, 300),
	)

	want := "general:\n" +
		"  name: Alex\n" +
		"  age: 30\n" +
		"  weight: 75.5\n" +
		"  height: not set\n" +
		"  gender: Male\n" +
		"  activity_level: not set\n" +
		"goals:\n" +
		"  - Muscle Gain\n" +
		"  - Stay Active\n" +
		"nutrition:\n" +
		"  calories: 2500\n" +
		"  protein: 150\n" +
		"  fat: 70\n" +
		"  carbs: 300"

	first := ProfileSummary(p)
	require.Equal(t, want, first)

	// Same input renders byte-identically.
	assert.Equal(t, first, ProfileSummary(p))
}

func TestProfileSummary_EmptyProfile(t *testing.T) {
	p := domain.NewProfile("id", "")
	got := ProfileSummary(p)
	assert.Contains(t, got, "name: not set")
	assert.Contains(t, got, "goals:\n  none")
	assert.Contains(t, got, "calories: not set")
}
