package provider

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"excuses/internal/cache"
	"excuses/internal/corpus"
	"excuses/internal/engine"
	"excuses/internal/together"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, situation string) (string, error) {
	g.calls++
	return g.text, g.err
}

type recordingNotifier struct {
	levels   []string
	messages []string
}

func (n *recordingNotifier) Notify(level, message string) {
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

func newTestProvider(gen Generator, n Notifier, restricted bool) (*Provider, *cache.LRU) {
	c := cache.New(10)
	p := New(Options{
		Cache:      c,
		Generator:  gen,
		Selector:   engine.NewSelector(rand.New(rand.NewPCG(1, 2))),
		Notifier:   n,
		Deployment: DeploymentContext{Platform: "test", Restricted: restricted},
	})
	return p, c
}

func TestProduceFallsBackToSpecificPool(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("%w: connection refused", together.ErrNetwork)}
	p, _ := newTestProvider(gen, nil, false)

	situation := "I missed the meeting because of a missed deadline"
	res := p.Produce(context.Background(), situation, Request{})

	pool, _ := corpus.Default().SpecificExcuses("missed deadline")
	if !slices.Contains(pool, res.Text) {
		t.Errorf("Produce(%q) = %q, not from the missed deadline pool", situation, res.Text)
	}
	if res.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", res.Source)
	}
	want := engine.Classification{Kind: engine.KindSpecific, Key: "missed deadline"}
	if res.Classification != want {
		t.Errorf("Classification = %v, want %v", res.Classification, want)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestProduceRemoteSuccessIsCleanedAndCached(t *testing.T) {
	gen := &fakeGenerator{text: `Here's an excuse you could use: "My car broke down."`}
	p, c := newTestProvider(gen, nil, false)

	res := p.Produce(context.Background(), "Late again", Request{})
	if res.Text != "My car broke down." || res.Source != "remote" {
		t.Fatalf("Produce() = %+v", res)
	}
	if got, ok := c.Get("late again"); !ok || got != "My car broke down." {
		t.Errorf("cache.Get() = %q, %v", got, ok)
	}
}

func TestProduceCacheHitShortCircuits(t *testing.T) {
	gen := &fakeGenerator{text: "Remote excuse."}
	p, c := newTestProvider(gen, nil, false)
	c.Put("my situation", "Cached excuse.")

	res := p.Produce(context.Background(), "  My Situation ", Request{})
	if res.Text != "Cached excuse." || res.Source != "cache" {
		t.Errorf("Produce() = %+v, want cached result", res)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times on a cache hit", gen.calls)
	}
}

func TestProduceBypassCache(t *testing.T) {
	gen := &fakeGenerator{text: "Fresh excuse."}
	p, c := newTestProvider(gen, nil, false)
	c.Put("my situation", "Cached excuse.")

	res := p.Produce(context.Background(), "my situation", Request{BypassCache: true})
	if res.Text != "Fresh excuse." {
		t.Errorf("Produce() = %q, want fresh excuse", res.Text)
	}
	if got, _ := c.Get("my situation"); got != "Fresh excuse." {
		t.Errorf("cache not overwritten, got %q", got)
	}
}

func TestProduceRestrictedSkipsRemote(t *testing.T) {
	gen := &fakeGenerator{text: "Should not be used."}
	n := &recordingNotifier{}
	p, c := newTestProvider(gen, n, true)

	res := p.Produce(context.Background(), "late for work again", Request{})
	if gen.calls != 0 {
		t.Errorf("generator called %d times in a restricted deployment", gen.calls)
	}
	if res.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", res.Source)
	}
	if len(n.messages) != 0 {
		t.Errorf("restricted fallback should not notify, got %v", n.messages)
	}
	if got, ok := c.Get("late for work again"); !ok || got != res.Text {
		t.Errorf("fallback result not written through: %q, %v", got, ok)
	}
}

func TestProduceNilGeneratorActsRestricted(t *testing.T) {
	p, _ := newTestProvider(nil, nil, false)
	res := p.Produce(context.Background(), "anything", Request{})
	if res.Source != "fallback" || res.Text == "" {
		t.Errorf("Produce() = %+v", res)
	}
}

func TestProduceNotifiesOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"http status", &fakeGenerator{err: &together.APIError{StatusCode: 500, Body: "boom"}}},
		{"malformed", &fakeGenerator{err: together.ErrMalformedResponse}},
		{"upstream", &fakeGenerator{err: fmt.Errorf("%w: overloaded", together.ErrUpstream)}},
		{"empty after cleanup", &fakeGenerator{text: `[only a note]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			p, _ := newTestProvider(tt.gen, n, false)
			res := p.Produce(context.Background(), "forgot birthday", Request{})
			if res.Source != "fallback" {
				t.Errorf("Source = %q, want fallback", res.Source)
			}
			if len(n.messages) != 1 || n.messages[0] != FallbackNotice || n.levels[0] != "error" {
				t.Errorf("notifications = %v %v", n.levels, n.messages)
			}
		})
	}
}

func TestProduceWithoutCacheOrNotifier(t *testing.T) {
	p := New(Options{Generator: &fakeGenerator{err: errors.New("down")}})
	if got := p.Excuse(context.Background(), "homework", Request{}); got == "" {
		t.Error("Excuse() returned an empty string")
	}
}

func TestExcuseIsNeverEmpty(t *testing.T) {
	inputs := []string{"x", "late for work", "my boss and my project", "☕", "I forgot my friend's birthday", "   spaced   "}
	p, _ := newTestProvider(&fakeGenerator{err: together.ErrNetwork}, nil, false)
	for _, in := range inputs {
		if got := p.Excuse(context.Background(), in, Request{BypassCache: true}); got == "" {
			t.Errorf("Excuse(%q) returned an empty string", in)
		}
	}
}

func TestFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrRestricted, "restricted"},
		{&together.APIError{StatusCode: 404}, "http"},
		{fmt.Errorf("%w: bad json", together.ErrMalformedResponse), "malformed"},
		{together.ErrUpstream, "upstream"},
		{together.ErrNetwork, "network"},
		{context.DeadlineExceeded, "network"},
	}
	for _, tt := range tests {
		if got := failureKind(tt.err); got != tt.want {
			t.Errorf("failureKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
