package domain

import "time"

// Note is a free-text journal entry owned by one profile. Notes are
// immutable once created; they are deleted individually or in bulk when the
// owning profile is deleted. UserID references a profile at creation time
// but the store enforces no referential integrity afterwards.
type Note struct {
	ID         string
	UserID     string
	Text       string
	IngestedAt time.Time

	// Embedding is the note body's vector representation, captured
	// best-effort at creation. Nil when no embedding could be obtained.
	Embedding []float32
}
