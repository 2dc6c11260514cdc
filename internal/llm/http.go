package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 512

// httpBase carries what both wire strategies share: config, the HTTP
// client, and the bearer credential.
type httpBase struct {
	cfg      LLMConfig
	endpoint string
	model    string
	http     *http.Client
	log      zerolog.Logger
}

func newHTTPBase(cfg LLMConfig, logger zerolog.Logger) httpBase {
	return httpBase{
		cfg:      cfg,
		endpoint: cfg.ResolvedEndpoint(),
		model:    cfg.ResolvedModel(),
		http:     newHTTPClient(),
		log:      logger.With().Str("component", "llm").Str("mode", string(cfg.Mode)).Logger(),
	}
}

func (b httpBase) requestTimeout() time.Duration {
	return time.Duration(b.cfg.TimeoutMs) * time.Millisecond
}

// doJSON sends one request and decodes a 2xx JSON body into out. Each call
// has its own timeout derived from the config.
func (b httpBase) doJSON(ctx context.Context, method, url string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, b.requestTimeout())
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+b.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrHTTPStatus, resp.StatusCode, truncate(string(respBody), maxErrorBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
