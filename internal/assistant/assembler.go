package assistant

import (
	"context"
	"strconv"
	"strings"

	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/repository"
	"github.com/aldenmarsh/fitcoach/internal/vector"
	"go.uber.org/zap"
)

// maxContextNotes bounds how many notes are injected into a prompt.
const maxContextNotes = 4

// Assembler builds the textual context for a question: a flattened profile
// summary and the most relevant notes.
type Assembler struct {
	searcher vector.Searcher // nil when semantic retrieval is not configured
	notes    repository.NoteRepo
	log      *zap.SugaredLogger
}

// NewAssembler creates an Assembler. searcher may be nil, in which case
// notes are always retrieved by recency.
func NewAssembler(searcher vector.Searcher, notes repository.NoteRepo, log *zap.SugaredLogger) *Assembler {
	return &Assembler{searcher: searcher, notes: notes, log: log}
}

// Assemble returns the profile summary and notes text for a question.
func (a *Assembler) Assemble(ctx context.Context, question string, profile *domain.Profile) (string, string) {
	return ProfileSummary(profile), a.Notes(ctx, question, profile.ID)
}

// Notes retrieves up to maxContextNotes note bodies for the user, ranked by
// similarity to the question when semantic retrieval is available and
// falling back to the most recent notes otherwise. It never fails: on total
// retrieval failure it returns an empty string.
func (a *Assembler) Notes(ctx context.Context, question, userID string) string {
	if a.searcher != nil {
		notes, err := a.searcher.Search(ctx, question, maxContextNotes, userID)
		if err == nil {
			return joinNoteBodies(notes)
		}
		a.log.Debugw("semantic note retrieval failed, falling back to recency",
			"user_id", userID, "error", err)
	}

	notes, err := a.notes.ListByUser(ctx, userID)
	if err != nil {
		a.log.Warnw("note retrieval failed", "user_id", userID, "error", err)
		return ""
	}
	if len(notes) > maxContextNotes {
		notes = notes[:maxContextNotes]
	}
	return joinNoteBodies(notes)
}

func joinNoteBodies(notes []*domain.Note) string {
	bodies := make([]string, 0, len(notes))
	for _, n := range notes {
		bodies = append(bodies, n.Text)
	}
	return strings.Join(bodies, "\n")
}

// ProfileSummary flattens a profile into a deterministic, human-readable
// multi-line string for LLM context. Sections and fields render in a fixed
// order; unset values render as "not set". Nothing parses this back.
func ProfileSummary(p *domain.Profile) string {
	var b strings.Builder

	b.WriteString("general:\n")
	writeField(&b, "name", orNotSet(p.General.Name))
	writeField(&b, "age", optIntString(p.General.Age))
	writeField(&b, "weight", optFloatString(p.General.Weight))
	writeField(&b, "height", optFloatString(p.General.Height))
	writeField(&b, "gender", orNotSet(p.General.Gender))
	writeField(&b, "activity_level", orNotSet(p.General.ActivityLevel))

	b.WriteString("goals:\n")
	if len(p.Goals) == 0 {
		b.WriteString("  none\n")
	} else {
		for _, g := range p.Goals {
			b.WriteString("  - ")
			b.WriteString(g)
			b.WriteByte('\n')
		}
	}

	b.WriteString("nutrition:\n")
	writeField(&b, "calories", optFloatString(p.Nutrition.Calories))
	writeField(&b, "protein", optFloatString(p.Nutrition.Protein))
	writeField(&b, "fat", optFloatString(p.Nutrition.Fat))
	writeField(&b, "carbs", optFloatString(p.Nutrition.Carbs))

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString("  ")
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

func orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return "not set"
	}
	return s
}

func optIntString(v *int) string {
	if v == nil {
		return "not set"
	}
	return strconv.Itoa(*v)
}

func optFloatString(v *float64) string {
	if v == nil {
		return "not set"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
