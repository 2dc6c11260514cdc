package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/llm"
)

// Source records where a piece of coaching text came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result is generated text plus its origin.
type Result struct {
	Text   string
	Source Source
}

// Coach turns profiles into plans, schedules and chat replies. It never
// returns a generation error: remote failures resolve to fallback text.
type Coach struct {
	gen      llm.TextGenerator
	observer llm.Observer
	cache    *lru.Cache[string, string]
	log      zerolog.Logger
}

// Option configures a Coach.
type Option func(*Coach) error

// WithObserver reports every remote attempt to obs.
func WithObserver(obs llm.Observer) Option {
	return func(c *Coach) error {
		if obs != nil {
			c.observer = obs
		}
		return nil
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Coach) error {
		c.log = l
		return nil
	}
}

// WithPlanCache keeps up to size remote plan texts keyed by prompt.
// A size of zero or less disables caching.
func WithPlanCache(size int) Option {
	return func(c *Coach) error {
		if size <= 0 {
			c.cache = nil
			return nil
		}
		cache, err := lru.New[string, string](size)
		if err != nil {
			return fmt.Errorf("creating plan cache: %w", err)
		}
		c.cache = cache
		return nil
	}
}

// New creates a Coach over gen. A nil gen behaves as unconfigured.
func New(gen llm.TextGenerator, opts ...Option) (*Coach, error) {
	if gen == nil {
		gen = llm.DisabledGenerator{}
	}
	c := &Coach{
		gen:      gen,
		observer: llm.NoopObserver{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WorkoutPlan generates the weekly workout plan for p.
func (c *Coach) WorkoutPlan(ctx context.Context, p domain.Profile) Result {
	return c.Ask(ctx, domain.IntentWorkoutPlan, &p, "")
}

// NutritionPlan generates the nutrition guideline for p.
func (c *Coach) NutritionPlan(ctx context.Context, p domain.Profile) Result {
	return c.Ask(ctx, domain.IntentNutritionPlan, &p, "")
}

// SleepPlan generates the sleep guideline for p.
func (c *Coach) SleepPlan(ctx context.Context, p domain.Profile) Result {
	return c.Ask(ctx, domain.IntentSleepPlan, &p, "")
}

// Chat answers message, using p as context when non-nil.
func (c *Coach) Chat(ctx context.Context, message string, p *domain.Profile) Result {
	return c.Ask(ctx, domain.IntentChat, p, message)
}

// Schedule generates the seven-day schedule for p. Without remote text
// every day takes the goal table entry.
func (c *Coach) Schedule(ctx context.Context, p domain.Profile) ([]domain.ScheduleDay, Source) {
	prompt, err := BuildPrompt(domain.IntentWeeklySchedule, &p, "")
	var text string
	src := SourceFallback
	if err == nil {
		text, src, err = c.remote(ctx, domain.IntentWeeklySchedule, prompt)
	}
	if err != nil {
		c.logFallback(domain.IntentWeeklySchedule, err)
		return ParseSchedule("", p.Goal), SourceFallback
	}
	return ParseSchedule(text, p.Goal), src
}

// Ask builds the prompt for intent and resolves it. A prompt that cannot
// be built resolves to the fallback answer for message.
func (c *Coach) Ask(ctx context.Context, intent domain.Intent, p *domain.Profile, message string) Result {
	prompt, err := BuildPrompt(intent, p, message)
	if err != nil {
		c.logFallback(intent, err)
		return Result{Text: FallbackResponse(message), Source: SourceFallback}
	}
	return c.Generate(ctx, intent, prompt)
}

// Generate resolves prompt to text for intent, falling back to the
// keyword-matched answer when the remote call fails.
func (c *Coach) Generate(ctx context.Context, intent domain.Intent, prompt string) Result {
	text, src, err := c.remote(ctx, intent, prompt)
	if err != nil {
		c.logFallback(intent, err)
		return Result{Text: FallbackResponse(prompt), Source: SourceFallback}
	}
	return Result{Text: text, Source: src}
}

func (c *Coach) remote(ctx context.Context, intent domain.Intent, prompt string) (string, Source, error) {
	cacheable := c.cache != nil && intent.IsPlan()
	if cacheable {
		if text, ok := c.cache.Get(prompt); ok {
			return text, SourceCache, nil
		}
	}

	start := time.Now()
	resp, err := c.gen.Complete(ctx, prompt)
	ev := llm.LLMCallEvent{
		Task:      string(intent),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: llm.ErrorCode(err),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.Attempts = resp.Attempts
	}
	if !errors.Is(err, llm.ErrNotConfigured) {
		c.observer.OnCallComplete(ev)
	}
	if err != nil {
		return "", "", err
	}

	if cacheable {
		c.cache.Add(prompt, resp.Text)
	}
	return resp.Text, SourceLLM, nil
}

func (c *Coach) logFallback(intent domain.Intent, err error) {
	if errors.Is(err, llm.ErrNotConfigured) {
		c.log.Debug().Str("intent", string(intent)).Msg("generation not configured, using fallback")
		return
	}
	c.log.Warn().Err(err).
		Str("intent", string(intent)).
		Str("error_code", llm.ErrorCode(err)).
		Msg("generation failed, using fallback")
}
