// Package provider produces one excuse per situation: cached if possible,
// remotely generated if allowed, and from the local corpus otherwise.
package provider

import (
	"context"
	"errors"
	"log/slog"

	"excuses/internal/cache"
	"excuses/internal/corpus"
	"excuses/internal/engine"
	"excuses/internal/metrics"
	"excuses/internal/together"
)

// FallbackNotice is sent to the Notifier whenever the remote path fails.
const FallbackNotice = "API Error! Falling back to local excuses."

// ErrRestricted means the deployment cannot reach the generation service.
var ErrRestricted = errors.New("remote generation restricted in this deployment")

// Generator produces raw excuse text for a situation.
// *together.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, situation string) (string, error)
}

// Notifier receives side-channel reports about degraded results.
type Notifier interface {
	Notify(level, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(level, message string)

// Notify calls f(level, message).
func (f NotifierFunc) Notify(level, message string) { f(level, message) }

// DeploymentContext describes where the service runs. It is resolved once
// at startup and never re-derived.
type DeploymentContext struct {
	Platform   string
	Restricted bool
}

// Options holds the collaborators of a Provider. Cache, Generator and
// Notifier may be nil. A nil Corpus uses corpus.Default and a nil Selector
// uses the global random source.
type Options struct {
	Cache      *cache.LRU
	Generator  Generator
	Corpus     *corpus.Corpus
	Selector   *engine.Selector
	Notifier   Notifier
	Deployment DeploymentContext
}

// Request carries per-call options.
type Request struct {
	BypassCache bool
}

// Result is a produced excuse and where it came from. Classification is
// only set on the fallback path.
type Result struct {
	Text           string                `json:"excuse"`
	Source         string                `json:"source"`
	Classification engine.Classification `json:"classification"`
}

// Provider orchestrates cache, remote generation and local fallback.
type Provider struct {
	cache      *cache.LRU
	generator  Generator
	corpus     *corpus.Corpus
	selector   *engine.Selector
	notifier   Notifier
	deployment DeploymentContext
}

// New creates a Provider.
func New(opts Options) *Provider {
	p := &Provider{
		cache:      opts.Cache,
		generator:  opts.Generator,
		corpus:     opts.Corpus,
		selector:   opts.Selector,
		notifier:   opts.Notifier,
		deployment: opts.Deployment,
	}
	if p.corpus == nil {
		p.corpus = corpus.Default()
	}
	if p.selector == nil {
		p.selector = engine.NewSelector(nil)
	}
	return p
}

// Deployment returns the injected deployment context.
func (p *Provider) Deployment() DeploymentContext {
	return p.deployment
}

// Corpus returns the corpus used on the fallback path.
func (p *Provider) Corpus() *corpus.Corpus {
	return p.corpus
}

// Excuse returns a display-ready excuse. It never fails.
func (p *Provider) Excuse(ctx context.Context, situation string, req Request) string {
	return p.Produce(ctx, situation, req).Text
}

// Produce runs the full protocol and reports the source of the excuse.
// A cache hit returns immediately. Otherwise one remote attempt is made
// unless the deployment is restricted, and any failure falls back to the
// corpus. Every non-hit path writes its result through to the cache.
func (p *Provider) Produce(ctx context.Context, situation string, req Request) Result {
	if !req.BypassCache && p.cache != nil {
		if text, ok := p.cache.Get(situation); ok {
			metrics.RecordExcuse(metrics.SourceCache, "none")
			return Result{Text: text, Source: metrics.SourceCache}
		}
	}

	text, err := p.remote(ctx, situation)
	if err == nil {
		p.store(situation, text)
		metrics.RecordExcuse(metrics.SourceRemote, "none")
		return Result{Text: text, Source: metrics.SourceRemote}
	}

	kind := failureKind(err)
	metrics.RecordRemoteFailure(kind)
	if kind != metrics.FailureRestricted {
		slog.Warn("remote generation failed, using local corpus", "error", err)
		p.notify("error", FallbackNotice)
	}

	text, cl := p.selector.Pick(p.corpus, situation)
	p.store(situation, text)
	metrics.RecordExcuse(metrics.SourceFallback, string(cl.Kind))
	return Result{Text: text, Source: metrics.SourceFallback, Classification: cl}
}

func (p *Provider) remote(ctx context.Context, situation string) (string, error) {
	if p.deployment.Restricted || p.generator == nil {
		return "", ErrRestricted
	}
	raw, err := p.generator.Generate(ctx, situation)
	if err != nil {
		return "", err
	}
	text := Cleanup(raw)
	if text == "" {
		return "", together.ErrMalformedResponse
	}
	return text, nil
}

func (p *Provider) store(situation, text string) {
	if p.cache != nil {
		p.cache.Put(situation, text)
	}
}

func (p *Provider) notify(level, message string) {
	if p.notifier != nil {
		p.notifier.Notify(level, message)
	}
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrRestricted):
		return metrics.FailureRestricted
	case errors.Is(err, together.ErrHTTPStatus):
		return metrics.FailureHTTP
	case errors.Is(err, together.ErrMalformedResponse):
		return metrics.FailureMalformed
	case errors.Is(err, together.ErrUpstream):
		return metrics.FailureUpstream
	default:
		return metrics.FailureNetwork
	}
}
