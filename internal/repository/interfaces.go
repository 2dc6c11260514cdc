package repository

import (
	"context"

	"github.com/alexanderramin/fitai/internal/domain"
)

// ProfileRepo persists one profile per user.
type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}
