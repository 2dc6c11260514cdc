package formatter

import (
	"strings"

	"github.com/alexanderramin/fitai/internal/domain"
)

// FormatPlans renders the three generated plans as titled sections.
func FormatPlans(b domain.PlanBundle) string {
	sections := []struct {
		title string
		text  string
	}{
		{"Program Latihan", b.WorkoutPlan},
		{"Panduan Nutrisi", b.NutritionPlan},
		{"Pola Tidur", b.SleepPlan},
	}

	var out strings.Builder
	for i, s := range sections {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(Header(s.title))
		out.WriteString("\n")
		out.WriteString(strings.TrimSpace(s.text))
		out.WriteString("\n")
	}
	return out.String()
}

// FormatSchedule renders the weekly schedule as a table. Days marked done
// in completed get a check mark.
func FormatSchedule(days []domain.ScheduleDay, completed domain.Completion) string {
	rows := make([][]string, 0, len(days))
	for i, d := range days {
		done := false
		if i < len(domain.Week) {
			done = completed[domain.Week[i].Key]
		}
		rows = append(rows, []string{CheckMark(done), Bold(d.Day), d.Workout})
	}
	return Header("Jadwal Mingguan") + "\n\n" + RenderTable([]string{"", "Hari", "Latihan"}, rows)
}

// FormatChatReply renders one assistant reply.
func FormatChatReply(reply string) string {
	return StylePurple.Render("FitAI") + Dim(": ") + strings.TrimSpace(reply)
}

// FormatMotivation renders the phrase shown after a day is completed.
func FormatMotivation(phrase string) string {
	return StyleYellow.Render("★ " + phrase)
}
