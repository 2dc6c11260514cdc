package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_DecodingParams(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModePrediction, cfg.Mode)
	assert.Equal(t, 1000, cfg.PollIntervalMs)
	assert.Equal(t, 30, cfg.MaxPollAttempts)
	assert.Equal(t, "greedy", cfg.Params.DecodingMethod)
	assert.Equal(t, 500, cfg.Params.MaxNewTokens)
	assert.Equal(t, 1, cfg.Params.MinNewTokens)
	assert.Equal(t, 0.7, cfg.Params.Temperature)
	assert.Equal(t, 50, cfg.Params.TopK)
	assert.Equal(t, 0.9, cfg.Params.TopP)
	assert.Equal(t, 1.0, cfg.Params.RepetitionPenalty)
}

func TestDefaultConfig_NotConfigured(t *testing.T) {
	err := DefaultConfig().Validate()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("FITAI_LLM_API_KEY", " secret ")
	t.Setenv("FITAI_LLM_ENDPOINT", "https://example.test/v1/")
	t.Setenv("FITAI_LLM_MODEL", "granite-version")
	t.Setenv("FITAI_LLM_MODE", "SYNC")
	t.Setenv("FITAI_LLM_PROJECT_ID", "proj")
	t.Setenv("FITAI_LLM_TIMEOUT_MS", "2500")
	t.Setenv("FITAI_LLM_POLL_INTERVAL_MS", "250")
	t.Setenv("FITAI_LLM_MAX_POLL_ATTEMPTS", "5")
	t.Setenv("FITAI_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://example.test/v1", cfg.ResolvedEndpoint())
	assert.Equal(t, "granite-version", cfg.ResolvedModel())
	assert.Equal(t, ModeSync, cfg.Mode)
	assert.Equal(t, "proj", cfg.ProjectID)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 250, cfg.PollIntervalMs)
	assert.Equal(t, 5, cfg.MaxPollAttempts)
	assert.True(t, cfg.LogCalls)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("FITAI_LLM_MODE", "streaming")
	t.Setenv("FITAI_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("FITAI_LLM_MAX_POLL_ATTEMPTS", "-3")

	cfg := LoadConfig()

	assert.Equal(t, ModePrediction, cfg.Mode)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 30, cfg.MaxPollAttempts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LLMConfig)
		wantErr bool
	}{
		{"prediction needs model version", func(c *LLMConfig) { c.APIKey = "k" }, true},
		{"prediction with model", func(c *LLMConfig) { c.APIKey = "k"; c.Model = "v1" }, false},
		{"sync has default model", func(c *LLMConfig) { c.APIKey = "k"; c.Mode = ModeSync }, false},
		{"missing key", func(c *LLMConfig) { c.Model = "v1" }, true},
		{"endpoint not a url", func(c *LLMConfig) { c.APIKey = "k"; c.Model = "v1"; c.Endpoint = "abc123" }, true},
		{"unknown mode", func(c *LLMConfig) { c.APIKey = "k"; c.Model = "v1"; c.Mode = "stream" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotConfigured)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolvedEndpoint_DefaultsPerMode(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api.replicate.com/v1", cfg.ResolvedEndpoint())

	cfg.Mode = ModeSync
	assert.Equal(t, "https://us-south.ml.cloud.ibm.com", cfg.ResolvedEndpoint())
	assert.Equal(t, "ibm/granite-13b-instruct-v2", cfg.ResolvedModel())
}
