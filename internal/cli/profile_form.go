package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
	"github.com/alexanderramin/fitai/internal/domain"
)

// profileFormFields holds the raw text values bound to the profile form.
type profileFormFields struct {
	name       string
	weight     string
	bodyFat    string
	muscleMass string
	age        string
	goal       string
}

func newProfileFormFields(p *domain.Profile) *profileFormFields {
	if p == nil {
		return &profileFormFields{goal: string(domain.GoalRecomposition)}
	}
	return &profileFormFields{
		name:       p.Name,
		weight:     strconv.Itoa(p.Weight),
		bodyFat:    strconv.Itoa(p.BodyFat),
		muscleMass: strconv.Itoa(p.MuscleMass),
		age:        strconv.Itoa(p.Age),
		goal:       string(p.Goal),
	}
}

// toProfileFields converts the text values. Blank values stay unset so
// domain validation reports them as missing.
func (f *profileFormFields) toProfileFields() (domain.ProfileFields, error) {
	var out domain.ProfileFields
	if s := strings.TrimSpace(f.name); s != "" {
		out.Name = &s
	}
	ints := []struct {
		field string
		raw   string
		dst   **int
	}{
		{"weight", f.weight, &out.Weight},
		{"bodyFat", f.bodyFat, &out.BodyFat},
		{"muscleMass", f.muscleMass, &out.MuscleMass},
		{"age", f.age, &out.Age},
	}
	for _, in := range ints {
		raw := strings.TrimSpace(in.raw)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ProfileFields{}, &domain.ValidationError{Field: in.field, Message: fmt.Sprintf("must be a whole number, got %q", raw)}
		}
		*in.dst = &v
	}
	if s := strings.TrimSpace(f.goal); s != "" {
		g := domain.Goal(strings.ToLower(s))
		out.Goal = &g
	}
	return out, nil
}

func fitaiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileForm collects all profile fields. Range checks mirror domain
// validation so the user is corrected before submitting.
func profileForm(f *profileFormFields) *huh.Form {
	goals := make([]huh.Option[string], 0, len(domain.Goals))
	for _, g := range domain.Goals {
		goals = append(goals, huh.NewOption(g.Label(), string(g)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nama").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Berat badan (kg)").Placeholder("70").Value(&f.weight).Validate(validatePositiveInt),
			huh.NewInput().Title("Lemak tubuh (%)").Placeholder("18").Value(&f.bodyFat).Validate(validatePercent),
			huh.NewInput().Title("Massa otot (%)").Placeholder("40").Value(&f.muscleMass).Validate(validatePercent),
			huh.NewInput().Title("Usia (tahun)").Placeholder("28").Value(&f.age).Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Tujuan").Options(goals...).Value(&f.goal),
		),
	).WithTheme(fitaiHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validatePercent(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a number from 0 to 100")
	}
	return nil
}
