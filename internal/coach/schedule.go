package coach

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/fitai/internal/domain"
)

// GeneralWorkout labels every day when the goal has no schedule table.
const GeneralWorkout = "Latihan Umum"

var scheduleTables = map[domain.Goal][7]string{
	domain.GoalCutting: {
		"Latihan Upper Body & Cardio",
		"Latihan Lower Body",
		"Cardio HIIT",
		"Latihan Push (Dada, Bahu, Trisep)",
		"Latihan Pull (Punggung, Bisep)",
		"Cardio Steady State",
		"Istirahat Total",
	},
	domain.GoalBulking: {
		"Latihan Dada & Trisep",
		"Latihan Punggung & Bisep",
		"Istirahat Aktif",
		"Latihan Kaki & Glutes",
		"Latihan Bahu & Core",
		"Latihan Full Body",
		"Istirahat Total",
	},
	domain.GoalRecomposition: {
		"Latihan Upper Body",
		"Latihan Lower Body",
		"Cardio & Core",
		"Latihan Push",
		"Latihan Pull",
		"Functional Training",
		"Istirahat Total",
	},
}

var dayPatterns = func() [7]*regexp.Regexp {
	var out [7]*regexp.Regexp
	for i, d := range domain.Week {
		out[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(d.Name) + `:\s*(.+)`)
	}
	return out
}()

// FallbackLabel returns the table entry for goal at day index i.
func FallbackLabel(goal domain.Goal, i int) string {
	table, ok := scheduleTables[goal]
	if !ok || i < 0 || i >= len(table) {
		return GeneralWorkout
	}
	return table[i]
}

// ParseSchedule extracts one workout label per canonical day from text.
// Each line is matched independently, the first matching line wins, and
// a day without a usable label takes its entry from the goal table. The
// result always has seven entries in Monday-first order.
func ParseSchedule(text string, goal domain.Goal) []domain.ScheduleDay {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]domain.ScheduleDay, 0, len(domain.Week))
	for i, d := range domain.Week {
		label := findDayLabel(lines, dayPatterns[i])
		if label == "" {
			label = FallbackLabel(goal, i)
		}
		out = append(out, domain.ScheduleDay{Day: d.Name, Workout: label})
	}
	return out
}

func findDayLabel(lines []string, re *regexp.Regexp) string {
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			if label := strings.TrimSpace(m[1]); label != "" {
				return label
			}
		}
	}
	return ""
}
