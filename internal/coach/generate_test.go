package coach

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/llm"
	"github.com/alexanderramin/fitai/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []llm.LLMCallEvent
}

func (o *recordingObserver) OnCallComplete(ev llm.LLMCallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func newCoach(t *testing.T, gen llm.TextGenerator, opts ...Option) *Coach {
	t.Helper()
	c, err := New(gen, opts...)
	require.NoError(t, err)
	return c
}

func TestCoach_UnconfiguredBulkingWorkoutPlan(t *testing.T) {
	c := newCoach(t, llm.NewGenerator(llm.DefaultConfig(), zerolog.Nop()))
	p := testutil.NewTestProfile("u", testutil.WithMetrics(70, 15, 40, 25), testutil.WithGoal(domain.GoalBulking))

	res := c.WorkoutPlan(context.Background(), *p)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, workoutFallback, res.Text)
	assert.True(t, strings.HasPrefix(res.Text, "SENIN: Latihan Dada & Trisep"))
}

func TestCoach_UnconfiguredPlansUseMatchingFallback(t *testing.T) {
	c := newCoach(t, nil)
	for _, g := range domain.Goals {
		p := testutil.NewTestProfile("u", testutil.WithGoal(g))
		ctx := context.Background()
		assert.Equal(t, workoutFallback, c.WorkoutPlan(ctx, *p).Text)
		assert.Equal(t, nutritionFallback, c.NutritionPlan(ctx, *p).Text)
		assert.Equal(t, sleepFallback, c.SleepPlan(ctx, *p).Text)
	}
}

func TestCoach_RemoteSuccess(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "Rencana khusus"}
	obs := &recordingObserver{}
	c := newCoach(t, gen, WithObserver(obs))
	p := testutil.NewTestProfile("u")

	res := c.NutritionPlan(context.Background(), *p)

	assert.Equal(t, Result{Text: "Rencana khusus", Source: SourceLLM}, res)
	require.Len(t, gen.Prompts(), 1)
	assert.Equal(t, NutritionPrompt(*p), gen.Prompts()[0])
	require.Len(t, obs.events, 1)
	assert.Equal(t, "nutrition-plan", obs.events[0].Task)
	assert.True(t, obs.events[0].Success)
}

func TestCoach_AskBuildsPromptPerIntent(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "ok"}
	c := newCoach(t, gen)
	p := testutil.NewTestProfile("u", testutil.WithGoal(domain.GoalCutting))
	ctx := context.Background()

	for _, intent := range []domain.Intent{domain.IntentWorkoutPlan, domain.IntentSleepPlan, domain.IntentChat} {
		res := c.Ask(ctx, intent, p, "halo")
		assert.Equal(t, SourceLLM, res.Source, intent)
	}
	c.Schedule(ctx, *p)

	prompts := gen.Prompts()
	require.Len(t, prompts, 4)
	want := []domain.Intent{domain.IntentWorkoutPlan, domain.IntentSleepPlan, domain.IntentChat, domain.IntentWeeklySchedule}
	for i, intent := range want {
		built, err := BuildPrompt(intent, p, "halo")
		require.NoError(t, err)
		assert.Equal(t, built, prompts[i], intent)
	}
}

func TestCoach_AskUnbuildablePromptFallsBackWithoutRemote(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "tidak dipakai"}
	c := newCoach(t, gen)
	ctx := context.Background()

	res := c.Ask(ctx, domain.IntentWorkoutPlan, nil, "Berapa kebutuhan protein saya?")
	assert.Equal(t, Result{Text: proteinFallback, Source: SourceFallback}, res)

	res = c.Ask(ctx, domain.Intent("poem"), testutil.NewTestProfile("u"), "")
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, FallbackResponse(""), res.Text)

	assert.Empty(t, gen.Prompts())
}

func TestCoach_RemoteFailureFallsBack(t *testing.T) {
	gen := &llm.StaticGenerator{Err: fmt.Errorf("wrapped: %w", llm.ErrHTTPStatus)}
	obs := &recordingObserver{}
	c := newCoach(t, gen, WithObserver(obs))

	res := c.Chat(context.Background(), "Berapa kebutuhan protein saya?", nil)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, proteinFallback, res.Text)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "HTTP_STATUS", obs.events[0].ErrorCode)
}

func TestCoach_NotConfiguredNotObserved(t *testing.T) {
	obs := &recordingObserver{}
	c := newCoach(t, llm.DisabledGenerator{}, WithObserver(obs))

	res := c.Chat(context.Background(), "halo", nil)

	assert.Equal(t, defaultFallback, res.Text)
	assert.Empty(t, obs.events)
}

func TestCoach_PlanCache(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "rencana"}
	c := newCoach(t, gen, WithPlanCache(8))
	p := testutil.NewTestProfile("u")
	ctx := context.Background()

	first := c.SleepPlan(ctx, *p)
	second := c.SleepPlan(ctx, *p)

	assert.Equal(t, SourceLLM, first.Source)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Text, second.Text)
	assert.Len(t, gen.Prompts(), 1)
}

func TestCoach_ChatNeverCached(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "jawaban"}
	c := newCoach(t, gen, WithPlanCache(8))
	ctx := context.Background()

	c.Chat(ctx, "halo", nil)
	res := c.Chat(ctx, "halo", nil)

	assert.Equal(t, SourceLLM, res.Source)
	assert.Len(t, gen.Prompts(), 2)
}

func TestCoach_FallbackNeverCached(t *testing.T) {
	gen := &llm.StaticGenerator{Err: llm.ErrTimeout}
	c := newCoach(t, gen, WithPlanCache(8))
	p := testutil.NewTestProfile("u")
	ctx := context.Background()

	assert.Equal(t, SourceFallback, c.WorkoutPlan(ctx, *p).Source)
	gen.Err = nil
	gen.Text = "baru"
	res := c.WorkoutPlan(ctx, *p)
	assert.Equal(t, Result{Text: "baru", Source: SourceLLM}, res)
}

func TestCoach_ScheduleFromRemote(t *testing.T) {
	gen := &llm.StaticGenerator{Text: "Senin: Push\nSelasa: Pull\nRabu: Legs"}
	c := newCoach(t, gen)
	p := testutil.NewTestProfile("u", testutil.WithGoal(domain.GoalCutting))

	days, src := c.Schedule(context.Background(), *p)

	assert.Equal(t, SourceLLM, src)
	require.Len(t, days, 7)
	assert.Equal(t, "Push", days[0].Workout)
	assert.Equal(t, "Legs", days[2].Workout)
	assert.Equal(t, "Latihan Push (Dada, Bahu, Trisep)", days[3].Workout)
}

func TestCoach_ScheduleOfflineUsesTable(t *testing.T) {
	c := newCoach(t, nil)
	p := testutil.NewTestProfile("u", testutil.WithGoal(domain.GoalBulking))

	days, src := c.Schedule(context.Background(), *p)

	assert.Equal(t, SourceFallback, src)
	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, domain.Week[i].Name, d.Day)
		assert.Equal(t, scheduleTables[domain.GoalBulking][i], d.Workout)
	}
}

func TestCoach_EndToEndPredictionServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.Write([]byte(`{"id":"p1","status":"starting"}`))
		default:
			w.Write([]byte(`{"id":"p1","status":"succeeded","output":["Program ","kustom"]}`))
		}
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "k"
	cfg.Model = "v"
	cfg.Endpoint = srv.URL
	cfg.PollIntervalMs = 1
	c := newCoach(t, llm.NewGenerator(cfg, zerolog.Nop()))

	res := c.WorkoutPlan(context.Background(), *testutil.NewTestProfile("u"))
	assert.Equal(t, Result{Text: "Program kustom", Source: SourceLLM}, res)
}

func TestCoach_EndToEndServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "k"
	cfg.Mode = llm.ModeSync
	cfg.Endpoint = srv.URL
	c := newCoach(t, llm.NewGenerator(cfg, zerolog.Nop()))

	res := c.SleepPlan(context.Background(), *testutil.NewTestProfile("u"))
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, sleepFallback, res.Text)
}

func TestWithPlanCache_ZeroDisables(t *testing.T) {
	c := newCoach(t, nil, WithPlanCache(0))
	assert.Nil(t, c.cache)
}
