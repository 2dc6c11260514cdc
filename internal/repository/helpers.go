package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitai/internal/domain"
)

// parseTime parses an RFC3339 column, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// encodeCompletion serializes the completion map for the TEXT column.
// A nil map is stored as "{}".
func encodeCompletion(c domain.Completion) (string, error) {
	if c == nil {
		return "{}", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding completion: %w", err)
	}
	return string(b), nil
}

func decodeCompletion(s string) (domain.Completion, error) {
	c := domain.Completion{}
	if strings.TrimSpace(s) == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return nil, fmt.Errorf("decoding completion: %w", err)
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
