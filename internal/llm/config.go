package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode selects the wire strategy used to reach the remote endpoint.
type Mode string

const (
	// ModeSync issues one request whose response carries the text.
	ModeSync Mode = "sync"
	// ModePrediction creates a prediction job and polls it to completion.
	ModePrediction Mode = "prediction"
)

const (
	defaultSyncEndpoint       = "https://us-south.ml.cloud.ibm.com"
	defaultPredictionEndpoint = "https://api.replicate.com/v1"
	defaultSyncModel          = "ibm/granite-13b-instruct-v2"
	syncAPIVersion            = "2023-05-29"
)

// DecodingParams are sent with every generation request.
type DecodingParams struct {
	DecodingMethod    string
	MaxNewTokens      int
	MinNewTokens      int
	Temperature       float64
	TopK              int
	TopP              float64
	RepetitionPenalty float64
}

// LLMConfig holds all configuration for the generation subsystem.
type LLMConfig struct {
	APIKey          string
	Endpoint        string
	Model           string
	ProjectID       string
	Mode            Mode
	TimeoutMs       int
	PollIntervalMs  int
	MaxPollAttempts int
	LogCalls        bool
	Params          DecodingParams
}

// DefaultConfig returns an LLMConfig with no credential, so generation is
// unconfigured until an API key is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Mode:            ModePrediction,
		TimeoutMs:       15000,
		PollIntervalMs:  1000,
		MaxPollAttempts: 30,
		Params: DecodingParams{
			DecodingMethod:    "greedy",
			MaxNewTokens:      500,
			MinNewTokens:      1,
			Temperature:       0.7,
			TopK:              50,
			TopP:              0.9,
			RepetitionPenalty: 1.0,
		},
	}
}

// LoadConfig reads configuration from FITAI_LLM_* environment variables,
// falling back to defaults for any unset or malformed value.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	cfg.APIKey = strings.TrimSpace(os.Getenv("FITAI_LLM_API_KEY"))
	cfg.Endpoint = strings.TrimSpace(os.Getenv("FITAI_LLM_ENDPOINT"))
	cfg.Model = strings.TrimSpace(os.Getenv("FITAI_LLM_MODEL"))
	cfg.ProjectID = strings.TrimSpace(os.Getenv("FITAI_LLM_PROJECT_ID"))

	if v := os.Getenv("FITAI_LLM_MODE"); v != "" {
		switch m := Mode(strings.ToLower(strings.TrimSpace(v))); m {
		case ModeSync, ModePrediction:
			cfg.Mode = m
		}
	}
	if v := os.Getenv("FITAI_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	applyPositiveIntEnv(&cfg.TimeoutMs, "FITAI_LLM_TIMEOUT_MS")
	applyPositiveIntEnv(&cfg.PollIntervalMs, "FITAI_LLM_POLL_INTERVAL_MS")
	applyPositiveIntEnv(&cfg.MaxPollAttempts, "FITAI_LLM_MAX_POLL_ATTEMPTS")

	return cfg
}

func applyPositiveIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

// ResolvedEndpoint returns the configured endpoint or the default for Mode.
func (c LLMConfig) ResolvedEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	if c.Mode == ModeSync {
		return defaultSyncEndpoint
	}
	return defaultPredictionEndpoint
}

// ResolvedModel returns the configured model. The sync shape has a default
// model id; the prediction shape needs an explicit model version.
func (c LLMConfig) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Mode == ModeSync {
		return defaultSyncModel
	}
	return ""
}

// Validate returns an error wrapping ErrNotConfigured when a required
// setting is missing or malformed.
func (c LLMConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: api key missing", ErrNotConfigured)
	}
	switch c.Mode {
	case ModeSync, ModePrediction:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrNotConfigured, c.Mode)
	}
	if !validURL(c.ResolvedEndpoint()) {
		return fmt.Errorf("%w: endpoint must be an http(s) URL", ErrNotConfigured)
	}
	if c.ResolvedModel() == "" {
		return fmt.Errorf("%w: model missing", ErrNotConfigured)
	}
	return nil
}

func validURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
