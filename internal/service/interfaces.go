package service

import (
	"context"

	"github.com/alexanderramin/fitai/internal/domain"
)

// ProfileService owns profile lifecycle and weekly completion tracking.
// Lookups for unknown users fail with repository.ErrNotFound; bad input
// fails with domain.ErrValidation before the store is touched.
type ProfileService interface {
	CreateOrUpdate(ctx context.Context, userID string, fields domain.ProfileFields) (*domain.Profile, error)
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, fields domain.ProfileFields) (*domain.Profile, error)
	SetCompletion(ctx context.Context, userID, dayKey string, done bool) (*domain.Profile, error)
	ReplaceCompletion(ctx context.Context, userID string, completed domain.Completion) (*domain.Profile, error)
	Progress(ctx context.Context, userID string) (*domain.WeeklyProgress, error)
}

// CoachService produces plans, schedules and chat replies. Generation
// problems never surface as errors.
type CoachService interface {
	GeneratePlans(ctx context.Context, p domain.Profile) domain.PlanBundle
	GenerateSchedule(ctx context.Context, p domain.Profile) []domain.ScheduleDay
	Chat(ctx context.Context, message string, p *domain.Profile) (string, error)
}
