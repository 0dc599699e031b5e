package frame

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
	"github.com/jcastellanos/habitframe-backend/pkg/metrics"
)

// Frame action names, used for metrics labels.
const (
	actionLogHabit   = "log_habit"
	actionViewHabits = "view_habits"
	actionAddHabit   = "add_habit"
	actionShare      = "share_progress"
	actionDashboard  = "dashboard"
)

// ServiceParams groups dependencies for the frame service.
type ServiceParams struct {
	Users   users.Service
	Habits  habits.Service
	Streaks streaks.Service
	BaseURL string
	Metrics *metrics.DomainMetrics
	Logger  *logger.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Service dispatches frame button presses to the habit core and shapes the
// card responses frame clients render.
type Service interface {
	HandleAction(ctx context.Context, input ActionInput) (Response, error)
}

type service struct {
	users   users.Service
	habits  habits.Service
	streaks streaks.Service
	baseURL string
	metrics *metrics.DomainMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService builds a frame service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "users service is required")
	}
	if params.Habits == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "habits service is required")
	}
	if params.Streaks == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "streaks service is required")
	}
	if params.BaseURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "base url is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:   params.Users,
		habits:  params.Habits,
		streaks: params.Streaks,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		metrics: params.Metrics,
		logg:    params.Logger,
		now:     now,
	}, nil
}

// HandleAction upserts the acting user by Farcaster id, then dispatches on
// the pressed button. Every path returns a renderable card; domain failures
// inside a flow degrade to a prompt card rather than an error where the
// original flow did.
func (s *service) HandleAction(ctx context.Context, input ActionInput) (Response, error) {
	if input.FID <= 0 {
		return Response{}, pkgerrors.New(pkgerrors.CodeValidation, "frame fid is required")
	}

	user, err := s.users.Upsert(ctx, users.UpsertInput{
		FarcasterID: strconv.FormatInt(input.FID, 10),
	})
	if err != nil {
		return Response{}, err
	}

	inputText := strings.TrimSpace(input.InputText)

	switch input.ButtonIndex {
	case 1:
		s.metrics.IncFrameAction(actionLogHabit)
		return s.logHabit(ctx, user, inputText)
	case 2:
		s.metrics.IncFrameAction(actionViewHabits)
		return s.viewHabits(ctx, user)
	case 3:
		s.metrics.IncFrameAction(actionAddHabit)
		return s.addHabit(ctx, user, inputText)
	case 4:
		s.metrics.IncFrameAction(actionShare)
		return s.shareProgress(ctx, user)
	default:
		s.metrics.IncFrameAction(actionDashboard)
		return s.dashboard(ctx, user)
	}
}

func (s *service) logHabit(ctx context.Context, user users.UserDTO, habitName string) (Response, error) {
	listed, err := s.habits.List(ctx, user.ID, false)
	if err != nil {
		return Response{}, err
	}
	if len(listed) == 0 {
		return Response{Frames: FramePayload{
			Version: "vNext",
			Image:   s.imageURL(ImageOnboarding, nil),
			Buttons: []Button{postButton("Add Your First Habit")},
			Input:   &InputPrompt{Text: "Enter habit name"},
		}}, nil
	}

	if habitName != "" {
		for _, habit := range listed {
			if !strings.EqualFold(habit.Name, habitName) {
				continue
			}
			return s.logMatchedHabit(ctx, habit)
		}
	}

	names := make([]string, 0, len(listed))
	for _, habit := range listed {
		names = append(names, habit.Name)
	}
	return Response{Frames: FramePayload{
		Version: "vNext",
		Image:   s.imageURL(ImageSelectHabit, url.Values{"habitNames": {strings.Join(names, ",")}}),
		Buttons: []Button{postButton("Log Habit")},
		Input:   &InputPrompt{Text: "Enter habit name to log"},
	}}, nil
}

func (s *service) logMatchedHabit(ctx context.Context, habit habits.HabitDTO) (Response, error) {
	today := s.now().UTC().Format(streaks.DateLayout)
	out, err := s.streaks.Log(ctx, streaks.LogInput{
		HabitID:    habit.ID,
		LogDate:    today,
		IsAdherent: true,
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeDuplicateLog {
			return Response{Frames: FramePayload{
				Version: "vNext",
				Image:   s.imageURL(ImageAlreadyLogged, url.Values{"habit": {habit.Name}}),
				Buttons: []Button{postButton("View Progress"), postButton("Log Another Habit")},
			}}, nil
		}
		return Response{}, err
	}

	return Response{Frames: FramePayload{
		Version: "vNext",
		Image: s.imageURL(ImageStreakUpdate, url.Values{
			"habit":  {habit.Name},
			"streak": {strconv.Itoa(out.NewStreak)},
		}),
		Buttons: []Button{postButton("Continue Streaking! 🔥"), postButton("Share Progress")},
	}}, nil
}

func (s *service) viewHabits(ctx context.Context, user users.UserDTO) (Response, error) {
	listed, err := s.habits.List(ctx, user.ID, false)
	if err != nil {
		return Response{}, err
	}

	totalStreak := 0
	summaries := make([]string, 0, len(listed))
	for _, habit := range listed {
		totalStreak += habit.CurrentStreak
		summaries = append(summaries, fmt.Sprintf("%s %s: %d days", habit.Icon, habit.Name, habit.CurrentStreak))
	}

	return Response{Frames: FramePayload{
		Version: "vNext",
		Image: s.imageURL(ImageHabitsOverview, url.Values{
			"habitNames":  {strings.Join(summaries, ",")},
			"totalStreak": {strconv.Itoa(totalStreak)},
		}),
		Buttons: []Button{postButton("Log Today's Habit"), postButton("Add New Habit")},
	}}, nil
}

func (s *service) addHabit(ctx context.Context, user users.UserDTO, habitName string) (Response, error) {
	if habitName == "" {
		return Response{Frames: FramePayload{
			Version: "vNext",
			Image:   s.imageURL(ImageAddHabit, nil),
			Buttons: []Button{postButton("Create Habit")},
			Input:   &InputPrompt{Text: "Enter habit name"},
		}}, nil
	}

	out, err := s.habits.Create(ctx, habits.CreateInput{
		UserID:      user.ID,
		Name:        habitName,
		Description: fmt.Sprintf("Stay consistent with %s", habitName),
		Goal:        "Daily practice",
		Category:    "productivity",
	})
	if err != nil {
		return Response{}, err
	}

	return Response{Frames: FramePayload{
		Version: "vNext",
		Image:   s.imageURL(ImageHabitCreated, url.Values{"habit": {out.Habit.Name}}),
		Buttons: []Button{postButton("Start Logging!")},
	}}, nil
}

func (s *service) shareProgress(ctx context.Context, user users.UserDTO) (Response, error) {
	listed, err := s.habits.List(ctx, user.ID, false)
	if err != nil {
		return Response{}, err
	}

	var best *habits.HabitDTO
	for i := range listed {
		if best == nil || listed[i].CurrentStreak > best.CurrentStreak {
			best = &listed[i]
		}
	}
	if best == nil {
		return s.dashboard(ctx, user)
	}

	return Response{Frames: FramePayload{
		Version: "vNext",
		Image: s.imageURL(ImageShareProgress, url.Values{
			"habit":  {best.Name},
			"streak": {strconv.Itoa(best.CurrentStreak)},
		}),
		Buttons: []Button{postButton("Share on Farcaster")},
	}}, nil
}

func (s *service) dashboard(ctx context.Context, user users.UserDTO) (Response, error) {
	listed, err := s.habits.List(ctx, user.ID, false)
	if err != nil {
		return Response{}, err
	}

	totalStreak := 0
	for _, habit := range listed {
		totalStreak += habit.CurrentStreak
	}

	return Response{Frames: FramePayload{
		Version: "vNext",
		Image: s.imageURL(ImageDashboard, url.Values{
			"habitCount":  {strconv.Itoa(len(listed))},
			"totalStreak": {strconv.Itoa(totalStreak)},
		}),
		Buttons: []Button{
			postButton("Log Habit"),
			postButton("View Habits"),
			postButton("Add Habit"),
			postButton("Share Progress"),
		},
	}}, nil
}

func (s *service) imageURL(imageType string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("type", imageType)
	return s.baseURL + "/api/frame/image?" + params.Encode()
}
