package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports the first invalid field of a profile submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ProfileFields is a profile submission. Nil pointers mean "not provided",
// which keeps a missing bodyFat distinguishable from a bodyFat of 0.
type ProfileFields struct {
	Name       *string    `json:"name"`
	Weight     *int       `json:"weight"`
	BodyFat    *int       `json:"bodyFat"`
	MuscleMass *int       `json:"muscleMass"`
	Age        *int       `json:"age"`
	Goal       *Goal      `json:"goal"`
	Completed  Completion `json:"completed,omitempty"`
}

// ValidateComplete requires every field and checks its range.
func (f ProfileFields) ValidateComplete() error {
	switch {
	case f.Name == nil:
		return invalid("name", "is required")
	case f.Weight == nil:
		return invalid("weight", "is required")
	case f.BodyFat == nil:
		return invalid("bodyFat", "is required")
	case f.MuscleMass == nil:
		return invalid("muscleMass", "is required")
	case f.Age == nil:
		return invalid("age", "is required")
	case f.Goal == nil:
		return invalid("goal", "is required")
	}
	return f.validateRanges()
}

// ValidatePartial checks only the fields that are present, and requires
// at least one of them.
func (f ProfileFields) ValidatePartial() error {
	if f.IsEmpty() {
		return invalid("profile", "no fields to update")
	}
	return f.validateRanges()
}

// IsEmpty reports whether no field is set.
func (f ProfileFields) IsEmpty() bool {
	return f.Name == nil && f.Weight == nil && f.BodyFat == nil &&
		f.MuscleMass == nil && f.Age == nil && f.Goal == nil && f.Completed == nil
}

func (f ProfileFields) validateRanges() error {
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if f.Weight != nil && *f.Weight <= 0 {
		return invalid("weight", "must be a positive integer, got %d", *f.Weight)
	}
	if f.BodyFat != nil && (*f.BodyFat < 0 || *f.BodyFat > 100) {
		return invalid("bodyFat", "must be between 0 and 100, got %d", *f.BodyFat)
	}
	if f.MuscleMass != nil && (*f.MuscleMass < 0 || *f.MuscleMass > 100) {
		return invalid("muscleMass", "must be between 0 and 100, got %d", *f.MuscleMass)
	}
	if f.Age != nil && *f.Age <= 0 {
		return invalid("age", "must be a positive integer, got %d", *f.Age)
	}
	if f.Goal != nil && !f.Goal.IsValid() {
		return invalid("goal", "must be one of cutting, bulking, recomposition, got %q", string(*f.Goal))
	}
	for key := range f.Completed {
		if strings.TrimSpace(key) == "" {
			return invalid("completed", "day key must not be empty")
		}
	}
	return nil
}

// ApplyTo copies the present fields onto p. Completion is replaced only
// when provided.
func (f ProfileFields) ApplyTo(p *Profile) {
	p.Name = strings.TrimSpace(StrFromPtrWithDefault(p.Name, f.Name))
	p.Weight = IntFromPtrWithDefault(p.Weight, f.Weight)
	p.BodyFat = IntFromPtrWithDefault(p.BodyFat, f.BodyFat)
	p.MuscleMass = IntFromPtrWithDefault(p.MuscleMass, f.MuscleMass)
	p.Age = IntFromPtrWithDefault(p.Age, f.Age)
	p.Goal = GoalFromPtrWithDefault(p.Goal, f.Goal)
	if f.Completed != nil {
		p.Completed = f.Completed.Clone()
	}
	if p.Completed == nil {
		p.Completed = Completion{}
	}
}
