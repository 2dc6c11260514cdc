package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitai/internal/db"
	"github.com/alexanderramin/fitai/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, user_id, name, weight, body_fat, muscle_mass, age, goal, completed, created_at, updated_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	completed, err := encodeCompletion(p.Completed)
	if err != nil {
		return err
	}
	query := `INSERT INTO user_profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		p.Weight,
		p.BodyFat,
		p.MuscleMass,
		p.Age,
		string(p.Goal),
		completed,
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile for user %q: %w", p.UserID, ErrAlreadyExists)
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		p                    domain.Profile
		goal, completed      string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Weight,
		&p.BodyFat,
		&p.MuscleMass,
		&p.Age,
		&goal,
		&completed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile for user %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Goal = domain.Goal(goal)
	p.Completed, err = decodeCompletion(completed)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// Update overwrites every mutable column of the profile owned by p.UserID.
func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	completed, err := encodeCompletion(p.Completed)
	if err != nil {
		return err
	}
	query := `UPDATE user_profiles SET name = ?, weight = ?, body_fat = ?, muscle_mass = ?,
		age = ?, goal = ?, completed = ?, updated_at = ?
		WHERE user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Weight,
		p.BodyFat,
		p.MuscleMass,
		p.Age,
		string(p.Goal),
		completed,
		formatTime(p.UpdatedAt),
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile for user %q: %w", p.UserID, ErrNotFound)
	}
	return nil
}
