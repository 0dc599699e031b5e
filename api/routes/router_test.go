package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/internal/frame"
	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	"github.com/jcastellanos/habitframe-backend/pkg/config"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
	"github.com/jcastellanos/habitframe-backend/pkg/redis"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubUsersService struct{}

func (stubUsersService) Upsert(ctx context.Context, input users.UpsertInput) (users.UserDTO, error) {
	return users.UserDTO{ID: uuid.New(), FarcasterID: input.FarcasterID}, nil
}

func (stubUsersService) GetByFarcasterID(ctx context.Context, farcasterID string) (users.UserDTO, error) {
	return users.UserDTO{ID: uuid.New(), FarcasterID: farcasterID}, nil
}

type stubHabitsService struct{}

func (stubHabitsService) Create(ctx context.Context, input habits.CreateInput) (habits.CreateOutput, error) {
	return habits.CreateOutput{Habit: habits.HabitDTO{ID: uuid.New(), Name: input.Name}}, nil
}

func (stubHabitsService) Update(ctx context.Context, id uuid.UUID, input habits.UpdateInput) (habits.HabitDTO, error) {
	return habits.HabitDTO{ID: id}, nil
}

func (stubHabitsService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (stubHabitsService) List(ctx context.Context, userID uuid.UUID, includeLogs bool) ([]habits.HabitDTO, error) {
	return []habits.HabitDTO{}, nil
}

type stubStreaksService struct{}

func (stubStreaksService) Log(ctx context.Context, input streaks.LogInput) (streaks.LogOutput, error) {
	return streaks.LogOutput{NewStreak: 1}, nil
}

func (stubStreaksService) ListLogs(ctx context.Context, habitID uuid.UUID, limit int) ([]streaks.StreakLogDTO, error) {
	return []streaks.StreakLogDTO{}, nil
}

type stubBadgesService struct{}

func (stubBadgesService) Catalog(ctx context.Context) ([]models.Badge, error) {
	return []models.Badge{}, nil
}

func (stubBadgesService) EnsureSeeded(ctx context.Context) error {
	return nil
}

type stubFrameService struct{}

func (stubFrameService) HandleAction(ctx context.Context, input frame.ActionInput) (frame.Response, error) {
	return frame.Response{Frames: frame.FramePayload{Version: "vNext"}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
	}
}

func newTestRouter() http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:   testConfig(),
		Logger:   logg,
		DBPinger: stubPinger{},
		Redis:    (*redis.Client)(nil),
		Users:    stubUsersService{},
		Habits:   stubHabitsService{},
		Streaks:  stubStreaksService{},
		Badges:   stubBadgesService{},
		Frame:    stubFrameService{},
		Gatherer: prometheus.NewRegistry(),
	})
}

func TestHealthLiveRoute(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestMetricsRoute(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestUserRoutesWired(t *testing.T) {
	router := newTestRouter()

	create := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"farcaster_id":"42"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, create)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for upsert got %d: %s", resp.Code, resp.Body.String())
	}

	get := httptest.NewRequest(http.MethodGet, "/api/v1/users?fid=42", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, get)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for fetch got %d", resp.Code)
	}
}

func TestHabitRoutesWired(t *testing.T) {
	router := newTestRouter()

	body := `{"user_id":"` + uuid.NewString() + `","name":"Run","category":"health"}`
	create := httptest.NewRequest(http.MethodPost, "/api/v1/habits", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, create)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for create got %d: %s", resp.Code, resp.Body.String())
	}

	habitID := uuid.NewString()
	update := httptest.NewRequest(http.MethodPut, "/api/v1/habits/"+habitID, strings.NewReader(`{"name":"Walk"}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, update)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for update got %d: %s", resp.Code, resp.Body.String())
	}

	del := httptest.NewRequest(http.MethodDelete, "/api/v1/habits/"+habitID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, del)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for delete got %d", resp.Code)
	}

	list := httptest.NewRequest(http.MethodGet, "/api/v1/habits?userId="+uuid.NewString(), nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, list)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for list got %d", resp.Code)
	}
}

func TestStreakRoutesWired(t *testing.T) {
	router := newTestRouter()

	body := `{"habit_id":"` + uuid.NewString() + `","log_date":"2026-03-15","is_adherent":true}`
	log := httptest.NewRequest(http.MethodPost, "/api/v1/streaks", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, log)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for log got %d: %s", resp.Code, resp.Body.String())
	}

	list := httptest.NewRequest(http.MethodGet, "/api/v1/streaks?habitId="+uuid.NewString(), nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, list)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for list got %d", resp.Code)
	}
}

func TestBadgeAndFrameRoutesWired(t *testing.T) {
	router := newTestRouter()

	badgesReq := httptest.NewRequest(http.MethodGet, "/api/v1/badges", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, badgesReq)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for badges got %d", resp.Code)
	}

	action := httptest.NewRequest(http.MethodPost, "/api/frame", strings.NewReader(`{"untrustedData":{"fid":42,"buttonIndex":1}}`))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, action)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for frame action got %d: %s", resp.Code, resp.Body.String())
	}

	image := httptest.NewRequest(http.MethodGet, "/api/frame/image?type=dashboard", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, image)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for frame image got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
