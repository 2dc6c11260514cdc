package testutil

import (
	"time"

	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/google/uuid"
)

// ProfileOption customizes a fixture profile.
type ProfileOption func(*domain.Profile)

func WithName(name string) ProfileOption {
	return func(p *domain.Profile) {
		p.Name = name
	}
}

func WithGoal(g domain.Goal) ProfileOption {
	return func(p *domain.Profile) {
		p.Goal = g
	}
}

func WithMetrics(weight, bodyFat, muscleMass, age int) ProfileOption {
	return func(p *domain.Profile) {
		p.Weight = weight
		p.BodyFat = bodyFat
		p.MuscleMass = muscleMass
		p.Age = age
	}
}

func WithCompleted(c domain.Completion) ProfileOption {
	return func(p *domain.Profile) {
		p.Completed = c.Clone()
	}
}

// NewTestProfile returns a valid recomposition profile for userID.
func NewTestProfile(userID string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := &domain.Profile{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       "Test User",
		Weight:     70,
		BodyFat:    18,
		MuscleMass: 40,
		Age:        28,
		Goal:       domain.GoalRecomposition,
		Completed:  domain.Completion{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ptr returns a pointer to v, for building domain.ProfileFields.
func Ptr[T any](v T) *T {
	return &v
}
