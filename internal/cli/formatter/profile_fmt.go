package formatter

import (
	"fmt"

	"github.com/alexanderramin/fitai/internal/domain"
)

// FormatProfile renders the profile card.
func FormatProfile(p *domain.Profile) string {
	body := keyValue([][2]string{
		{"Nama", Bold(p.Name)},
		{"Berat", fmt.Sprintf("%d kg", p.Weight)},
		{"Lemak tubuh", fmt.Sprintf("%d%%", p.BodyFat)},
		{"Massa otot", fmt.Sprintf("%d%%", p.MuscleMass)},
		{"Usia", fmt.Sprintf("%d tahun", p.Age)},
		{"Tujuan", GoalBadge(p.Goal)},
		{"ID", TruncID(p.ID)},
	})
	return RenderBox("Profil", body) + "\n"
}
