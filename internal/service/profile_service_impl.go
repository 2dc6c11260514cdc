package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/fitai/internal/db"
	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *profileService) CreateOrUpdate(ctx context.Context, userID string, fields domain.ProfileFields) (p *domain.Profile, err error) {
	start := time.Now()
	created := false
	defer func() {
		observe(ctx, s.observer, "profile.create_or_update", start, err, map[string]any{"user_id": userID, "created": created})
	}()

	if err := fields.ValidateComplete(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProfileRepo(tx)
		now := s.now()

		existing, err := repo.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			p = &domain.Profile{
				ID:        uuid.New().String(),
				UserID:    userID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			fields.ApplyTo(p)
			created = true
			return repo.Create(ctx, p)
		case err != nil:
			return err
		}

		fields.ApplyTo(existing)
		existing.UpdatedAt = now
		p = existing
		return repo.Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, fields domain.ProfileFields) (p *domain.Profile, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "profile.update", start, err, map[string]any{"user_id": userID})
	}()

	if err := fields.ValidatePartial(); err != nil {
		return nil, err
	}
	return s.modify(ctx, userID, func(p *domain.Profile) {
		fields.ApplyTo(p)
	})
}

func (s *profileService) SetCompletion(ctx context.Context, userID, dayKey string, done bool) (p *domain.Profile, err error) {
	start := time.Now()
	dayKey = strings.TrimSpace(dayKey)
	defer func() {
		observe(ctx, s.observer, "profile.set_completion", start, err, map[string]any{"user_id": userID, "day": dayKey, "done": done})
	}()

	if dayKey == "" {
		return nil, &domain.ValidationError{Field: "day", Message: "is required"}
	}
	return s.modify(ctx, userID, func(p *domain.Profile) {
		p.SetDay(dayKey, done)
	})
}

func (s *profileService) ReplaceCompletion(ctx context.Context, userID string, completed domain.Completion) (p *domain.Profile, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "profile.replace_completion", start, err, map[string]any{"user_id": userID, "days": len(completed)})
	}()

	if completed == nil {
		return nil, &domain.ValidationError{Field: "completed", Message: "is required"}
	}
	fields := domain.ProfileFields{Completed: completed}
	if err := fields.ValidatePartial(); err != nil {
		return nil, err
	}
	return s.modify(ctx, userID, func(p *domain.Profile) {
		p.Completed = completed.Clone()
	})
}

func (s *profileService) Progress(ctx context.Context, userID string) (*domain.WeeklyProgress, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress := p.Completed.Progress()
	return &progress, nil
}

// modify applies fn to the stored profile inside one transaction.
func (s *profileService) modify(ctx context.Context, userID string, fn func(*domain.Profile)) (*domain.Profile, error) {
	var out *domain.Profile
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProfileRepo(tx)
		p, err := repo.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		fn(p)
		p.UpdatedAt = s.now()
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
