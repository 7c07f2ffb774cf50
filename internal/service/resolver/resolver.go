// Package resolver turns a free-text topic query into a short description
// using an external knowledge source. Resolution never fails: every fault
// degrades to a placeholder.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/topiclog/internal/metrics"
	"github.com/heartmarshall/topiclog/internal/provider"
)

// Placeholder is the description stored when no summary could be obtained.
const Placeholder = "No information found"

// Reasons reported with a terminal state.
const (
	ReasonPrimary    = "primary"
	ReasonSearch     = "search"
	ReasonEmptyQuery = "empty_query"
	ReasonNoResults  = "no_results"
	ReasonNoExtract  = "no_extract"
	ReasonFault      = "fault"
)

// Lookup stages, used for per-stage timing.
const (
	stageSummary       = "summary"
	stageSearch        = "search"
	stageSearchSummary = "search_summary"
)

type source interface {
	Summary(ctx context.Context, title string) (*provider.Summary, error)
	Search(ctx context.Context, query string) ([]string, error)
}

// Outcome is the result of one resolution.
type Outcome struct {
	Text      string
	Degraded  bool
	Title     string
	Thumbnail *string
	ImageURL  *string
	State     State
	Reason    string
}

// Resolver runs the lookup state machine against a source.
type Resolver struct {
	src          source
	stageTimeout time.Duration
	metrics      *metrics.Metrics
	log          *slog.Logger
}

// NewResolver creates a Resolver. Every lookup stage is bounded by stageTimeout.
func NewResolver(log *slog.Logger, src source, stageTimeout time.Duration, m *metrics.Metrics) *Resolver {
	return &Resolver{
		src:          src,
		stageTimeout: stageTimeout,
		metrics:      m,
		log:          log.With("service", "resolver"),
	}
}

// Resolve derives a description for query. It is total: source errors,
// timeouts, panics and caller cancellation all yield a degraded Outcome.
func (r *Resolver) Resolve(ctx context.Context, query string) (out Outcome) {
	start := time.Now()
	m := &machine{r: r, state: StateNormalized, normalized: Normalize(query)}

	defer func() {
		if p := recover(); p != nil {
			r.log.ErrorContext(ctx, "resolver panic", slog.String("panic", fmt.Sprint(p)))
			m.degrade(ReasonFault)
			out = m.outcome()
		}

		r.metrics.ResolverOutcome(string(out.State), out.Reason)
		r.log.InfoContext(ctx, "topic resolved",
			slog.Int("query_len", len(query)),
			slog.String("normalized", m.normalized),
			slog.String("title", out.Title),
			slog.String("state", string(out.State)),
			slog.String("reason", out.Reason),
			slog.Duration("duration", time.Since(start)),
		)
	}()

	for !m.state.Terminal() {
		m.step(ctx)
	}
	return m.outcome()
}

// stage runs fn under the per-stage timeout and records its duration.
func (r *Resolver) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	stageCtx, cancel := context.WithTimeout(ctx, r.stageTimeout)
	defer cancel()

	start := time.Now()
	err := fn(stageCtx)
	r.metrics.ResolverStage(name, time.Since(start))

	if err != nil {
		r.log.WarnContext(ctx, "resolver stage failed",
			slog.String("stage", name),
			slog.String("error", err.Error()),
		)
	}
	return err
}
