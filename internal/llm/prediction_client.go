package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// predictionClient creates a prediction job and polls it until it reaches
// a terminal status or the attempt budget runs out.
type predictionClient struct {
	httpBase
}

type predictionRequest struct {
	Version string          `json:"version"`
	Input   predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	MinTokens   int     `json:"min_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

type predictionResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
}

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
	statusCanceled  = "canceled"
)

func (p predictionResponse) terminal() bool {
	switch p.Status {
	case statusSucceeded, statusFailed, statusCanceled:
		return true
	}
	return false
}

// outputText accepts a plain string or an array of string chunks.
func (p predictionResponse) outputText() (string, error) {
	raw := strings.TrimSpace(string(p.Output))
	if raw == "" || raw == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(p.Output, &s); err == nil {
		return s, nil
	}
	var chunks []string
	if err := json.Unmarshal(p.Output, &chunks); err == nil {
		return strings.Join(chunks, ""), nil
	}
	return "", fmt.Errorf("%w: unexpected prediction output shape", ErrInvalidOutput)
}

func (c *predictionClient) pollInterval() time.Duration {
	return time.Duration(c.cfg.PollIntervalMs) * time.Millisecond
}

func (c *predictionClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	start := time.Now()
	p := c.cfg.Params
	body := predictionRequest{
		Version: c.model,
		Input: predictionInput{
			Prompt:      prompt,
			MaxTokens:   p.MaxNewTokens,
			MinTokens:   p.MinNewTokens,
			Temperature: p.Temperature,
			TopP:        p.TopP,
			TopK:        p.TopK,
		},
	}

	var created predictionResponse
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint+"/predictions", body, &created); err != nil {
		return nil, fmt.Errorf("creating prediction: %w", err)
	}
	attempts := 1

	final := created
	if !created.terminal() {
		if created.ID == "" {
			return nil, fmt.Errorf("creating prediction: %w: missing prediction id", ErrInvalidOutput)
		}
		c.log.Debug().Str("prediction_id", created.ID).Msg("prediction created")

		polled, n, err := c.poll(ctx, created.ID)
		attempts += n
		if err != nil {
			return nil, err
		}
		final = polled
	}

	if final.Status != statusSucceeded {
		return nil, fmt.Errorf("%w: status %s: %v", ErrPredictionFailed, final.Status, final.Error)
	}
	out, err := final.outputText()
	if err != nil {
		return nil, err
	}
	text := CleanText(out)
	if text == "" {
		return nil, fmt.Errorf("%w: prediction succeeded without output", ErrInvalidOutput)
	}
	return &Completion{
		Text:      text,
		Model:     c.model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  attempts,
	}, nil
}

// poll fetches the prediction up to MaxPollAttempts times. The first fetch
// is immediate and later fetches wait PollInterval. A failed fetch consumes
// an attempt and polling continues. It returns the terminal prediction and
// the number of fetches made.
func (c *predictionClient) poll(ctx context.Context, id string) (predictionResponse, int, error) {
	pollURL := c.endpoint + "/predictions/" + url.PathEscape(id)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for attempt := 1; attempt <= c.cfg.MaxPollAttempts; attempt++ {
		if attempt > 1 {
			if timer == nil {
				timer = time.NewTimer(c.pollInterval())
			} else {
				timer.Reset(c.pollInterval())
			}
			select {
			case <-ctx.Done():
				return predictionResponse{}, attempt - 1, fmt.Errorf("polling prediction %s: %w: %v", id, ErrTimeout, ctx.Err())
			case <-timer.C:
			}
		}

		var current predictionResponse
		err := c.doJSON(ctx, http.MethodGet, pollURL, nil, &current)
		switch {
		case err != nil && errors.Is(err, ErrTimeout) && ctx.Err() != nil:
			return predictionResponse{}, attempt, fmt.Errorf("polling prediction %s: %w", id, err)
		case err != nil:
			c.log.Warn().Err(err).Str("prediction_id", id).Int("attempt", attempt).Msg("prediction poll failed")
		case current.terminal():
			return current, attempt, nil
		}
	}

	return predictionResponse{}, c.cfg.MaxPollAttempts,
		fmt.Errorf("polling prediction %s: %w after %d attempts", id, ErrPollExhausted, c.cfg.MaxPollAttempts)
}
