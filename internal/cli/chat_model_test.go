package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/llm"
	"github.com/aldenmarsh/fitcoach/internal/teatest"
	"github.com/aldenmarsh/fitcoach/internal/testutil"
)

// chatTestClient routes every question to the general responder and answers
// with a fixed string.
type chatTestClient struct {
	answer string
}

func (c *chatTestClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if req.Task == llm.TaskRoute {
		return &llm.GenerateResponse{Text: "no"}, nil
	}
	return &llm.GenerateResponse{Text: c.answer}, nil
}

func (c *chatTestClient) ChatStep(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return &llm.ChatResponse{Text: c.answer}, nil
}

func (c *chatTestClient) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1}, nil
}

// stubProfiles satisfies service.ProfileService for chat tests.
type stubProfiles struct {
	byName map[string]*domain.Profile
}

func (s *stubProfiles) GetOrCreateByName(ctx context.Context, name string) (*domain.Profile, error) {
	if p, ok := s.byName[name]; ok {
		return p, nil
	}
	p := testutil.NewTestProfile(name)
	s.byName[name] = p
	return p, nil
}

func (s *stubProfiles) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	return s.GetOrCreateByName(ctx, name)
}

func (s *stubProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return nil, nil
}
func (s *stubProfiles) ListNames(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubProfiles) SaveGeneral(ctx context.Context, id string, g domain.GeneralInfo) error {
	return nil
}
func (s *stubProfiles) SaveGoals(ctx context.Context, id string, goals []string) error { return nil }
func (s *stubProfiles) SaveNutrition(ctx context.Context, id string, n domain.NutritionTargets) error {
	return nil
}
func (s *stubProfiles) DeleteByName(ctx context.Context, name string) error { return nil }

// stubNotes satisfies service.NoteService for chat tests.
type stubNotes struct {
	added  []string
	addErr error
}

func (s *stubNotes) Add(ctx context.Context, userID, text string) (*domain.Note, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = append(s.added, text)
	return testutil.NewTestNote(userID, text), nil
}

func (s *stubNotes) GetByID(ctx context.Context, id string) (*domain.Note, error) { return nil, nil }
func (s *stubNotes) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	return nil, nil
}
func (s *stubNotes) Delete(ctx context.Context, id string) error { return nil }

type noteLister struct{}

func (noteLister) Create(ctx context.Context, n *domain.Note) error              { return nil }
func (noteLister) GetByID(ctx context.Context, id string) (*domain.Note, error)  { return nil, nil }
func (noteLister) ListByUser(ctx context.Context, id string) ([]*domain.Note, error) {
	return nil, nil
}
func (noteLister) Delete(ctx context.Context, id string) error       { return nil }
func (noteLister) DeleteByUser(ctx context.Context, id string) error { return nil }

func newChatTestApp(answer string) (*App, *stubNotes) {
	client := &chatTestClient{answer: answer}
	log := zap.NewNop().Sugar()
	coach := assistant.NewCoach(
		assistant.NewAssembler(nil, noteLister{}, log),
		assistant.NewRouter(client),
		assistant.NewToolResponder(client, log),
		assistant.NewGeneralResponder(client),
		log,
	)
	notes := &stubNotes{}
	app := &App{
		Profiles: &stubProfiles{byName: map[string]*domain.Profile{}},
		Notes:    notes,
		Coach:    coach,
		Macros:   assistant.NewMacroGenerator(client, log),
		Log:      log,
	}
	return app, notes
}

func TestChatModel_AskAndAnswer(t *testing.T) {
	app, _ := newChatTestApp("bench more, Alex")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()

	d.Type("how do I get stronger?")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "how do I get stronger?")
	assert.Contains(t, view, "bench more, Alex")
}

func TestChatModel_HistoryAccumulates(t *testing.T) {
	app, _ := newChatTestApp("answer")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()

	d.Type("first question")
	d.PressEnter()
	d.Type("second question")
	d.PressEnter()

	m := d.Model.(chatModel)
	require.Len(t, m.history, 4)
	assert.Equal(t, domain.RoleHuman, m.history[0].Role)
	assert.Equal(t, "first question", m.history[0].Text)
	assert.Equal(t, domain.RoleAssistant, m.history[1].Role)
	assert.Equal(t, "second question", m.history[2].Text)
}

func TestChatModel_SwitchClearsHistory(t *testing.T) {
	app, _ := newChatTestApp("answer")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()

	d.Type("a question")
	d.PressEnter()
	m := d.Model.(chatModel)
	require.NotEmpty(t, m.history)

	d.Type("/switch Sam")
	d.PressEnter()

	m = d.Model.(chatModel)
	assert.Empty(t, m.history, "switching profiles drops the conversation")
	assert.Equal(t, "Sam", m.profile.DisplayName())
	assert.Contains(t, d.View(), "Chatting as Sam")
}

func TestChatModel_NoteCommand(t *testing.T) {
	app, notes := newChatTestApp("answer")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()

	d.Type("/note slept 8 hours")
	d.PressEnter()

	require.Len(t, notes.added, 1)
	assert.Equal(t, "slept 8 hours", notes.added[0])
	assert.Contains(t, d.View(), "Noted.")
}

func TestChatModel_NoteCommandFailure(t *testing.T) {
	app, notes := newChatTestApp("answer")
	notes.addErr = errors.New("note text is empty")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()

	d.Type("/note   ")
	d.PressEnter()

	assert.Empty(t, notes.added)
	assert.NotContains(t, d.View(), "Noted.")
	assert.Contains(t, d.View(), "note text is empty")
}

func TestChatModel_QuitCommands(t *testing.T) {
	app, _ := newChatTestApp("answer")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()
	d.Type("/quit")
	d.PressEnter()
	assert.True(t, d.Quitting)

	d = teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()
	d.PressEsc()
	assert.True(t, d.Quitting)
}

func TestChatModel_EmptyInputIgnored(t *testing.T) {
	app, _ := newChatTestApp("answer")
	p := testutil.NewTestProfile("Alex")

	d := teatest.New(t, newChatModel(app, p), teatest.WithSize(80, 24))
	d.DrainInit()
	d.PressEnter()

	m := d.Model.(chatModel)
	assert.Empty(t, m.history)
}
