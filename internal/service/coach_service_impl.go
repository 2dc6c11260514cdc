package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/fitai/internal/coach"
	"github.com/alexanderramin/fitai/internal/domain"
)

type coachService struct {
	coach    *coach.Coach
	observer UseCaseObserver
}

func NewCoachService(c *coach.Coach, observers ...UseCaseObserver) CoachService {
	return &coachService{coach: c, observer: useCaseObserverOrNoop(observers)}
}

// GeneratePlans runs the three plan generations concurrently and joins
// them positionally.
func (s *coachService) GeneratePlans(ctx context.Context, p domain.Profile) domain.PlanBundle {
	start := time.Now()
	var workout, nutrition, sleep coach.Result

	var g errgroup.Group
	g.Go(func() error {
		workout = s.coach.WorkoutPlan(ctx, p)
		return nil
	})
	g.Go(func() error {
		nutrition = s.coach.NutritionPlan(ctx, p)
		return nil
	})
	g.Go(func() error {
		sleep = s.coach.SleepPlan(ctx, p)
		return nil
	})
	_ = g.Wait()

	observe(ctx, s.observer, "coach.generate_plans", start, nil, map[string]any{
		"user_id":          p.UserID,
		"workout_source":   string(workout.Source),
		"nutrition_source": string(nutrition.Source),
		"sleep_source":     string(sleep.Source),
	})
	return domain.PlanBundle{
		WorkoutPlan:   workout.Text,
		NutritionPlan: nutrition.Text,
		SleepPlan:     sleep.Text,
	}
}

func (s *coachService) GenerateSchedule(ctx context.Context, p domain.Profile) []domain.ScheduleDay {
	start := time.Now()
	days, src := s.coach.Schedule(ctx, p)
	observe(ctx, s.observer, "coach.generate_schedule", start, nil, map[string]any{
		"user_id": p.UserID,
		"source":  string(src),
	})
	return days
}

func (s *coachService) Chat(ctx context.Context, message string, p *domain.Profile) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", &domain.ValidationError{Field: "message", Message: "is required"}
	}
	start := time.Now()
	res := s.coach.Chat(ctx, message, p)
	observe(ctx, s.observer, "coach.chat", start, nil, map[string]any{
		"with_profile": p != nil,
		"source":       string(res.Source),
	})
	return res.Text, nil
}
