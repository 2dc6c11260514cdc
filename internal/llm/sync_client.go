package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// syncClient reads generated text straight from the response of a single
// POST to the text-generation endpoint.
type syncClient struct {
	httpBase
}

type syncRequest struct {
	ModelID    string           `json:"model_id"`
	Input      string           `json:"input"`
	ProjectID  string           `json:"project_id,omitempty"`
	Parameters syncRequestParam `json:"parameters"`
}

type syncRequestParam struct {
	DecodingMethod    string  `json:"decoding_method"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	MinNewTokens      int     `json:"min_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopK              int     `json:"top_k"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// syncResponse covers every response shape the endpoint family is known to
// return.
type syncResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
	GeneratedText string `json:"generated_text"`
	Choices       []struct {
		Text    string `json:"text"`
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// text reads the first present response shape. A non-empty results array
// decides the answer even when its text is empty.
func (r syncResponse) text() string {
	if len(r.Results) > 0 {
		return r.Results[0].GeneratedText
	}
	if r.GeneratedText != "" {
		return r.GeneratedText
	}
	if len(r.Choices) > 0 {
		if r.Choices[0].Text != "" {
			return r.Choices[0].Text
		}
		if r.Choices[0].Message != nil {
			return r.Choices[0].Message.Content
		}
	}
	return ""
}

func (c *syncClient) url() string {
	q := url.Values{}
	q.Set("version", syncAPIVersion)
	if c.cfg.ProjectID != "" {
		q.Set("project_id", c.cfg.ProjectID)
	}
	return c.endpoint + "/ml/v1/text/generation?" + q.Encode()
}

func (c *syncClient) Complete(ctx context.Context, prompt string) (*Completion, error) {
	start := time.Now()
	p := c.cfg.Params
	body := syncRequest{
		ModelID:   c.model,
		Input:     prompt,
		ProjectID: c.cfg.ProjectID,
		Parameters: syncRequestParam{
			DecodingMethod:    p.DecodingMethod,
			MaxNewTokens:      p.MaxNewTokens,
			MinNewTokens:      p.MinNewTokens,
			Temperature:       p.Temperature,
			TopK:              p.TopK,
			TopP:              p.TopP,
			RepetitionPenalty: p.RepetitionPenalty,
		},
	}

	var resp syncResponse
	if err := c.doJSON(ctx, http.MethodPost, c.url(), body, &resp); err != nil {
		return nil, fmt.Errorf("text generation: %w", err)
	}

	text := CleanText(resp.text())
	if text == "" {
		return nil, fmt.Errorf("text generation: %w: no generated text in response", ErrInvalidOutput)
	}
	return &Completion{
		Text:      text,
		Model:     c.model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  1,
	}, nil
}
