package llm

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Completion is the text produced for one prompt.
type Completion struct {
	Text      string
	Model     string
	LatencyMs int64
	// Attempts counts HTTP round trips, including polls.
	Attempts int
}

// TextGenerator produces text for a prompt or fails. Implementations never
// substitute fallback text themselves.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}

// NewGenerator returns the wire strategy selected by cfg.Mode. When cfg is
// not usable it returns a DisabledGenerator carrying the reason, so callers
// never reach the network.
func NewGenerator(cfg LLMConfig, logger zerolog.Logger) TextGenerator {
	LogConfigStatus(logger, cfg)
	if err := cfg.Validate(); err != nil {
		return DisabledGenerator{Reason: err}
	}
	base := newHTTPBase(cfg, logger)
	if cfg.Mode == ModeSync {
		return &syncClient{httpBase: base}
	}
	return &predictionClient{httpBase: base}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}
