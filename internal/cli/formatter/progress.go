package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitai/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// FormatProgress renders the weekly progress card: a bar, the status
// message and a done marker per canonical day.
func FormatProgress(wp domain.WeeklyProgress, completed domain.Completion) string {
	var b strings.Builder
	b.WriteString(Header("Progress Minggu Ini"))
	b.WriteString("\n\n")

	pct := 0.0
	if wp.Total > 0 {
		pct = float64(wp.Completed) / float64(wp.Total)
	}
	fmt.Fprintf(&b, "%s  %s\n", RenderProgress(pct, 21), Dim(fmt.Sprintf("%d/%d hari", wp.Completed, wp.Total)))
	b.WriteString(Bold(wp.Message))
	b.WriteString("\n\n")

	for _, d := range domain.Week {
		fmt.Fprintf(&b, "  %s %s\n", CheckMark(completed[d.Key]), d.Name)
	}
	return b.String()
}
