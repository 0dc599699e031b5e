package frame

import (
	"fmt"
	"html/template"
	"strings"
)

// Card image types served by the image endpoint.
const (
	ImageDashboard      = "dashboard"
	ImageOnboarding     = "onboarding"
	ImageSelectHabit    = "select-habit"
	ImageStreakUpdate   = "streak-update"
	ImageAlreadyLogged  = "already-logged"
	ImageHabitCreated   = "habit-created"
	ImageHabitsOverview = "habits-overview"
	ImageAddHabit       = "add-habit"
	ImageShareProgress  = "share-progress"
)

// ImageRequest carries the query parameters of an image render.
type ImageRequest struct {
	Type        string
	Habit       string
	Streak      int
	HabitCount  int
	TotalStreak int
	HabitNames  []string
}

// cardLine is one positioned text row on a card.
type cardLine struct {
	Y    int
	Size int
	Bold bool
	Fill string
	Text string
}

// card is the full description of a 1200x630 social image.
type card struct {
	GradientFrom string
	GradientTo   string
	Lines        []cardLine
}

var cardTemplate = template.Must(template.New("card").Parse(`<svg width="1200" height="630" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:{{.GradientFrom}};stop-opacity:1" />
      <stop offset="100%" style="stop-color:{{.GradientTo}};stop-opacity:1" />
    </linearGradient>
  </defs>
  <rect width="1200" height="630" fill="url(#bg)"/>
{{- range .Lines}}
  <text x="600" y="{{.Y}}" text-anchor="middle" font-family="Inter, sans-serif" font-size="{{.Size}}"{{if .Bold}} font-weight="bold"{{end}} fill="{{.Fill}}">{{.Text}}</text>
{{- end}}
</svg>
`))

// RenderImage produces the SVG card for a request. Unknown types fall back
// to the dashboard card, matching the lenient behavior frame clients rely
// on. Habit names flow through html/template so user text cannot break out
// of the markup.
func RenderImage(req ImageRequest) (string, error) {
	var c card
	switch req.Type {
	case ImageOnboarding:
		c = onboardingCard()
	case ImageSelectHabit:
		c = selectHabitCard(req.HabitNames)
	case ImageStreakUpdate:
		c = streakUpdateCard(req.Habit, req.Streak)
	case ImageAlreadyLogged:
		c = alreadyLoggedCard(req.Habit)
	case ImageHabitCreated:
		c = habitCreatedCard(req.Habit)
	case ImageHabitsOverview:
		c = habitsOverviewCard(req.HabitNames, req.TotalStreak)
	case ImageAddHabit:
		c = addHabitCard()
	case ImageShareProgress:
		c = shareProgressCard(req.Habit, req.Streak)
	default:
		c = dashboardCard(req.HabitCount, req.TotalStreak)
	}

	var sb strings.Builder
	if err := cardTemplate.Execute(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func dashboardCard(habitCount, totalStreak int) card {
	return card{
		GradientFrom: "#1a1a2e", GradientTo: "#16213e",
		Lines: []cardLine{
			{150, 48, true, "#82aaff", "🌟 HabitFrame"},
			{220, 24, false, "#c792ea", "Build habits that stick. Gamified for life."},
			{320, 36, false, "#ffffff", fmt.Sprintf("%d Active Habits", habitCount)},
			{380, 32, false, "#ffcb6b", fmt.Sprintf("🔥 %d Day Streak", totalStreak)},
			{500, 18, false, "#89ddff", "Log your habits daily and watch your streaks grow!"},
		},
	}
}

func onboardingCard() card {
	return card{
		GradientFrom: "#2d1b69", GradientTo: "#11998e",
		Lines: []cardLine{
			{150, 48, true, "#ffffff", "🎯 Welcome to HabitFrame!"},
			{220, 24, false, "#ffcb6b", "Your journey to better habits starts here"},
			{320, 32, false, "#82aaff", "🌱 Create your first habit"},
			{380, 20, false, "#c792ea", "Start small, stay consistent, achieve big!"},
		},
	}
}

func selectHabitCard(names []string) card {
	habitsText := "No habits yet. Add your first one!"
	if len(names) > 0 {
		habitsText = "Your habits: " + strings.Join(names, ", ")
	}
	return card{
		GradientFrom: "#1a1a2e", GradientTo: "#16213e",
		Lines: []cardLine{
			{150, 42, true, "#82aaff", "📝 Log Your Habit"},
			{220, 24, false, "#c792ea", "Which habit did you complete today?"},
			{320, 20, false, "#ffffff", habitsText},
			{420, 18, false, "#89ddff", "Enter the habit name in the input field below"},
		},
	}
}

func streakUpdateCard(habit string, streak int) card {
	return card{
		GradientFrom: "#ff6b6b", GradientTo: "#ffa500",
		Lines: []cardLine{
			{150, 48, true, "#ffffff", "🔥 Streak Updated!"},
			{220, 32, false, "#ffffff", habit},
			{300, 64, true, "#ffffff", fmt.Sprintf("%d Days", streak)},
			{380, 24, false, "#ffffff", "Keep the momentum going! 💪"},
		},
	}
}

func alreadyLoggedCard(habit string) card {
	return card{
		GradientFrom: "#4ecdc4", GradientTo: "#44a08d",
		Lines: []cardLine{
			{150, 42, true, "#ffffff", "✅ Already Logged Today"},
			{220, 28, false, "#ffffff", habit},
			{300, 24, false, "#ffffff", "Great job staying consistent!"},
			{380, 20, false, "#82aaff", "Come back tomorrow to keep your streak alive 🔥"},
		},
	}
}

func habitCreatedCard(habit string) card {
	return card{
		GradientFrom: "#667eea", GradientTo: "#764ba2",
		Lines: []cardLine{
			{150, 48, true, "#ffffff", "🎉 New Habit Created!"},
			{240, 36, false, "#ffffff", habit},
			{320, 24, false, "#ffcb6b", "Your journey begins now"},
			{380, 20, false, "#82aaff", "Start logging daily to build your streak! 🔥"},
		},
	}
}

func habitsOverviewCard(summaries []string, totalStreak int) card {
	limit := len(summaries)
	if limit > 3 {
		limit = 3
	}
	return card{
		GradientFrom: "#1a1a2e", GradientTo: "#16213e",
		Lines: []cardLine{
			{120, 42, true, "#82aaff", "📊 Your Habits Overview"},
			{180, 28, false, "#ffcb6b", fmt.Sprintf("🔥 Total Streak: %d days", totalStreak)},
			{240, 20, false, "#ffffff", strings.Join(summaries[:limit], " • ")},
			{320, 18, false, "#c792ea", "Keep up the great work! Every day counts."},
		},
	}
}

func addHabitCard() card {
	return card{
		GradientFrom: "#667eea", GradientTo: "#764ba2",
		Lines: []cardLine{
			{150, 48, true, "#ffffff", "➕ Add New Habit"},
			{220, 24, false, "#ffcb6b", "What habit would you like to build?"},
			{320, 20, false, "#ffffff", "Enter your habit name below"},
			{380, 18, false, "#82aaff", "Examples: Exercise, Read, Meditate, Drink Water"},
		},
	}
}

func shareProgressCard(habit string, streak int) card {
	return card{
		GradientFrom: "#ff9a9e", GradientTo: "#fecfef",
		Lines: []cardLine{
			{150, 42, true, "#ffffff", "🌟 Share Your Achievement!"},
			{220, 32, false, "#ffffff", habit},
			{280, 48, true, "#ffffff", fmt.Sprintf("🔥 %d Day Streak! 🔥", streak)},
			{360, 24, false, "#ffffff", "Inspire others with your consistency"},
			{420, 18, false, "#82aaff", "Share this milestone on Farcaster!"},
		},
	}
}
