package frame

import (
	"strings"
	"testing"
)

func TestRenderImageDashboard(t *testing.T) {
	svg, err := RenderImage(ImageRequest{Type: ImageDashboard, HabitCount: 3, TotalStreak: 12})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`<svg width="1200" height="630"`, "3 Active Habits", "🔥 12 Day Streak"} {
		if !strings.Contains(svg, want) {
			t.Fatalf("dashboard svg missing %q", want)
		}
	}
}

func TestRenderImageUnknownTypeFallsBack(t *testing.T) {
	svg, err := RenderImage(ImageRequest{Type: "bogus"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(svg, "0 Active Habits") {
		t.Fatal("unknown type should render the dashboard card")
	}
}

func TestRenderImageEscapesHabitNames(t *testing.T) {
	svg, err := RenderImage(ImageRequest{
		Type:   ImageStreakUpdate,
		Habit:  `<script>alert("x")</script>`,
		Streak: 4,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(svg, "<script>") {
		t.Fatal("habit name must be escaped")
	}
	if !strings.Contains(svg, "4 Days") {
		t.Fatal("streak count missing")
	}
}

func TestRenderImageOverviewCapsAtThreeHabits(t *testing.T) {
	svg, err := RenderImage(ImageRequest{
		Type:        ImageHabitsOverview,
		HabitNames:  []string{"a: 1 days", "b: 2 days", "c: 3 days", "d: 4 days"},
		TotalStreak: 10,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(svg, "d: 4 days") {
		t.Fatal("overview card should only show the first three habits")
	}
	if !strings.Contains(svg, "Total Streak: 10 days") {
		t.Fatal("total streak missing")
	}
}

func TestRenderImageSelectHabitEmpty(t *testing.T) {
	svg, err := RenderImage(ImageRequest{Type: ImageSelectHabit})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(svg, "No habits yet. Add your first one!") {
		t.Fatal("empty selection prompt missing")
	}
}
