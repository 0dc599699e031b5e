package frame

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	upserted []users.UpsertInput
	user     users.UserDTO
}

func (s *stubUsers) Upsert(_ context.Context, input users.UpsertInput) (users.UserDTO, error) {
	s.upserted = append(s.upserted, input)
	return s.user, nil
}

func (s *stubUsers) GetByFarcasterID(context.Context, string) (users.UserDTO, error) {
	return s.user, nil
}

type stubHabits struct {
	listed  []habits.HabitDTO
	created []habits.CreateInput
}

func (s *stubHabits) Create(_ context.Context, input habits.CreateInput) (habits.CreateOutput, error) {
	s.created = append(s.created, input)
	return habits.CreateOutput{Habit: habits.HabitDTO{ID: uuid.New(), Name: input.Name}}, nil
}

func (s *stubHabits) Update(context.Context, uuid.UUID, habits.UpdateInput) (habits.HabitDTO, error) {
	return habits.HabitDTO{}, nil
}

func (s *stubHabits) Deactivate(context.Context, uuid.UUID) error { return nil }

func (s *stubHabits) List(context.Context, uuid.UUID, bool) ([]habits.HabitDTO, error) {
	return s.listed, nil
}

type stubStreaks struct {
	logged []streaks.LogInput
	out    streaks.LogOutput
	err    error
}

func (s *stubStreaks) Log(_ context.Context, input streaks.LogInput) (streaks.LogOutput, error) {
	s.logged = append(s.logged, input)
	if s.err != nil {
		return streaks.LogOutput{}, s.err
	}
	return s.out, nil
}

func (s *stubStreaks) ListLogs(context.Context, uuid.UUID, int) ([]streaks.StreakLogDTO, error) {
	return nil, nil
}

type frameFixture struct {
	svc     Service
	users   *stubUsers
	habits  *stubHabits
	streaks *stubStreaks
}

func newFrameFixture(t *testing.T) *frameFixture {
	t.Helper()
	f := &frameFixture{
		users:   &stubUsers{user: users.UserDTO{ID: uuid.New(), FarcasterID: "42"}},
		habits:  &stubHabits{},
		streaks: &stubStreaks{},
	}
	svc, err := NewService(ServiceParams{
		Users:   f.users,
		Habits:  f.habits,
		Streaks: f.streaks,
		BaseURL: "https://habitframe.example",
		Now:     func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func imageType(t *testing.T, payload FramePayload) string {
	t.Helper()
	parsed, err := url.Parse(payload.Image)
	require.NoError(t, err)
	return parsed.Query().Get("type")
}

func TestHandleActionRequiresFID(t *testing.T) {
	f := newFrameFixture(t)
	_, err := f.svc.HandleAction(context.Background(), ActionInput{ButtonIndex: 1})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestHandleActionUpsertsActingUser(t *testing.T) {
	f := newFrameFixture(t)
	_, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42})
	require.NoError(t, err)
	require.Len(t, f.users.upserted, 1)
	assert.Equal(t, "42", f.users.upserted[0].FarcasterID)
}

func TestHandleActionDefaultRendersDashboard(t *testing.T) {
	f := newFrameFixture(t)
	f.habits.listed = []habits.HabitDTO{
		{Name: "run", CurrentStreak: 3},
		{Name: "read", CurrentStreak: 4},
	}

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42})
	require.NoError(t, err)
	assert.Equal(t, "vNext", resp.Frames.Version)
	assert.Equal(t, ImageDashboard, imageType(t, resp.Frames))
	assert.Contains(t, resp.Frames.Image, "totalStreak=7")
	require.Len(t, resp.Frames.Buttons, 4)
	assert.Equal(t, "Log Habit", resp.Frames.Buttons[0].Label)
}

func TestLogHabitWithNoHabitsPromptsOnboarding(t *testing.T) {
	f := newFrameFixture(t)

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42, ButtonIndex: 1})
	require.NoError(t, err)
	assert.Equal(t, ImageOnboarding, imageType(t, resp.Frames))
	require.NotNil(t, resp.Frames.Input)
	assert.Empty(t, f.streaks.logged)
}

func TestLogHabitMatchesNameCaseInsensitive(t *testing.T) {
	f := newFrameFixture(t)
	habitID := uuid.New()
	f.habits.listed = []habits.HabitDTO{{ID: habitID, Name: "Morning Run"}}
	f.streaks.out = streaks.LogOutput{NewStreak: 8}

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{
		FID: 42, ButtonIndex: 1, InputText: "morning run",
	})
	require.NoError(t, err)

	require.Len(t, f.streaks.logged, 1)
	assert.Equal(t, habitID, f.streaks.logged[0].HabitID)
	assert.Equal(t, "2026-03-15", f.streaks.logged[0].LogDate)
	assert.True(t, f.streaks.logged[0].IsAdherent)

	assert.Equal(t, ImageStreakUpdate, imageType(t, resp.Frames))
	assert.Contains(t, resp.Frames.Image, "streak=8")
}

func TestLogHabitDuplicateRendersAlreadyLogged(t *testing.T) {
	f := newFrameFixture(t)
	f.habits.listed = []habits.HabitDTO{{ID: uuid.New(), Name: "run"}}
	f.streaks.err = pkgerrors.New(pkgerrors.CodeDuplicateLog, "already logged")

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{
		FID: 42, ButtonIndex: 1, InputText: "run",
	})
	require.NoError(t, err, "duplicate degrades to a card, not an error")
	assert.Equal(t, ImageAlreadyLogged, imageType(t, resp.Frames))
}

func TestLogHabitUnmatchedNameShowsSelection(t *testing.T) {
	f := newFrameFixture(t)
	f.habits.listed = []habits.HabitDTO{{ID: uuid.New(), Name: "run"}}

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{
		FID: 42, ButtonIndex: 1, InputText: "swim",
	})
	require.NoError(t, err)
	assert.Equal(t, ImageSelectHabit, imageType(t, resp.Frames))
	assert.Empty(t, f.streaks.logged)
}

func TestAddHabitCreatesFromInput(t *testing.T) {
	f := newFrameFixture(t)

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{
		FID: 42, ButtonIndex: 3, InputText: "Meditate",
	})
	require.NoError(t, err)

	require.Len(t, f.habits.created, 1)
	created := f.habits.created[0]
	assert.Equal(t, "Meditate", created.Name)
	assert.Equal(t, "productivity", created.Category)
	assert.Equal(t, "Stay consistent with Meditate", created.Description)
	assert.Equal(t, "Daily practice", created.Goal)

	assert.Equal(t, ImageHabitCreated, imageType(t, resp.Frames))
}

func TestAddHabitWithoutInputPrompts(t *testing.T) {
	f := newFrameFixture(t)

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42, ButtonIndex: 3})
	require.NoError(t, err)
	assert.Equal(t, ImageAddHabit, imageType(t, resp.Frames))
	require.NotNil(t, resp.Frames.Input)
	assert.Empty(t, f.habits.created)
}

func TestShareProgressPicksBestStreak(t *testing.T) {
	f := newFrameFixture(t)
	f.habits.listed = []habits.HabitDTO{
		{Name: "run", CurrentStreak: 3},
		{Name: "read", CurrentStreak: 9},
		{Name: "write", CurrentStreak: 5},
	}

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42, ButtonIndex: 4})
	require.NoError(t, err)
	assert.Equal(t, ImageShareProgress, imageType(t, resp.Frames))
	assert.Contains(t, resp.Frames.Image, "streak=9")
	assert.True(t, strings.Contains(resp.Frames.Image, url.QueryEscape("read")))
}

func TestShareProgressWithoutHabitsFallsBackToDashboard(t *testing.T) {
	f := newFrameFixture(t)

	resp, err := f.svc.HandleAction(context.Background(), ActionInput{FID: 42, ButtonIndex: 4})
	require.NoError(t, err)
	assert.Equal(t, ImageDashboard, imageType(t, resp.Frames))
}
