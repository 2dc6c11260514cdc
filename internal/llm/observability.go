package llm

import (
	"github.com/rs/zerolog"
)

// LLMCallEvent records metadata about a single generation attempt.
type LLMCallEvent struct {
	Task      string
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes call events as structured log records.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{log: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	ev := o.log.Info()
	if !event.Success {
		ev = o.log.Warn().Str("error_code", event.ErrorCode)
	}
	ev.Str("task", event.Task).
		Str("model", event.Model).
		Int64("latency_ms", event.LatencyMs).
		Int("attempts", event.Attempts).
		Bool("success", event.Success).
		Msg("llm_call")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// LogConfigStatus reports which settings are present without revealing
// the credential. A missing credential is logged as a warning.
func LogConfigStatus(logger zerolog.Logger, cfg LLMConfig) {
	err := cfg.Validate()
	ev := logger.Info()
	if err != nil {
		ev = logger.Warn().Err(err)
	}
	ev.Str("mode", string(cfg.Mode)).
		Bool("api_key_configured", cfg.APIKey != "").
		Bool("model_configured", cfg.ResolvedModel() != "").
		Bool("project_id_configured", cfg.ProjectID != "").
		Bool("endpoint_valid", validURL(cfg.ResolvedEndpoint())).
		Msg("llm configuration")
}
