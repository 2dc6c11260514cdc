package llm

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGenerator(t *testing.T) {
	gen := &StaticGenerator{Text: "halo"}

	resp, err := gen.Complete(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "halo", resp.Text)

	gen.Err = errors.New("down")
	_, err = gen.Complete(context.Background(), "p2")
	assert.Error(t, err)
	assert.Equal(t, []string{"p1", "p2"}, gen.Prompts())
}

func TestDisabledGenerator_DefaultsToNotConfigured(t *testing.T) {
	_, err := DisabledGenerator{}.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLogObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf))

	obs.OnCallComplete(LLMCallEvent{Task: "workout-plan", Model: "m", LatencyMs: 12, Attempts: 3, Success: false, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, `"message":"llm_call"`)
	assert.Contains(t, out, `"task":"workout-plan"`)
	assert.Contains(t, out, `"error_code":"TIMEOUT"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestLogConfigStatus_NeverLogsKey(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.APIKey = "super-secret"
	cfg.Model = "v"

	LogConfigStatus(zerolog.New(&buf), cfg)

	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), `"api_key_configured":true`)
}
