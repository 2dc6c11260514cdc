package domain

import (
	"math"
	"time"
)

// Completion maps a day key to whether that day's workout was done.
type Completion map[string]bool

// Clone returns an independent copy. A nil receiver yields an empty map.
func (c Completion) Clone() Completion {
	out := make(Completion, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Profile is a user's body metrics and goal. At most one exists per UserID.
type Profile struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       string     `json:"name"`
	Weight     int        `json:"weight"`
	BodyFat    int        `json:"bodyFat"`
	MuscleMass int        `json:"muscleMass"`
	Age        int        `json:"age"`
	Goal       Goal       `json:"goal"`
	Completed  Completion `json:"completed"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// SetDay records the completion state for one day.
func (p *Profile) SetDay(key string, done bool) {
	if p.Completed == nil {
		p.Completed = Completion{}
	}
	p.Completed[key] = done
}

// WeeklyProgress summarizes how many of the seven days are done.
type WeeklyProgress struct {
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	Message   string `json:"message"`
}

// Progress counts completed canonical days. Keys outside the canonical
// week are ignored so the percentage never exceeds 100.
func (c Completion) Progress() WeeklyProgress {
	done := 0
	for _, d := range Week {
		if c[d.Key] {
			done++
		}
	}
	total := len(Week)
	return WeeklyProgress{
		Completed: done,
		Total:     total,
		Percent:   int(math.Round(float64(done) / float64(total) * 100)),
		Message:   progressMessage(done, total),
	}
}

func progressMessage(done, total int) string {
	switch {
	case done == total:
		return "Hebat! Semua latihan selesai!"
	case done > 4:
		return "Hampir selesai!"
	case done > 2:
		return "Pertahankan!"
	default:
		return "Ayo semangat!"
	}
}
