package resolver

import (
	"context"

	"github.com/heartmarshall/topiclog/internal/provider"
)

// State is a resolver state. Resolved and Degraded are terminal.
type State string

const (
	StateNormalized       State = "normalized"
	StatePrimaryAttempted State = "primary_attempted"
	StateSearchAttempted  State = "search_attempted"
	StateResolved         State = "resolved"
	StateDegraded         State = "degraded"
)

// Terminal reports whether no further transition exists.
func (s State) Terminal() bool {
	return s == StateResolved || s == StateDegraded
}

// machine holds the data carried between states of one resolution.
type machine struct {
	r          *Resolver
	state      State
	normalized string

	summary    *provider.Summary // last fetched summary
	summaryErr error
	titles     []string
	searchErr  error

	reason string
}

func (m *machine) step(ctx context.Context) {
	switch m.state {
	case StateNormalized:
		m.fromNormalized(ctx)
	case StatePrimaryAttempted:
		m.fromPrimaryAttempted(ctx)
	case StateSearchAttempted:
		m.fromSearchAttempted(ctx)
	default:
		m.degrade(ReasonFault)
	}
}

// fromNormalized issues the direct summary lookup for the normalized query.
func (m *machine) fromNormalized(ctx context.Context) {
	if m.normalized == "" {
		m.degrade(ReasonEmptyQuery)
		return
	}

	m.summaryErr = m.r.stage(ctx, stageSummary, func(ctx context.Context) error {
		var err error
		m.summary, err = m.r.src.Summary(ctx, m.normalized)
		return err
	})
	m.state = StatePrimaryAttempted
}

// fromPrimaryAttempted accepts a direct hit or falls back to search.
func (m *machine) fromPrimaryAttempted(ctx context.Context) {
	switch {
	case m.summaryErr != nil:
		m.degrade(ReasonFault)
		return
	case m.hasText():
		m.resolve(ReasonPrimary)
		return
	}

	m.searchErr = m.r.stage(ctx, stageSearch, func(ctx context.Context) error {
		var err error
		m.titles, err = m.r.src.Search(ctx, m.normalized)
		return err
	})
	m.state = StateSearchAttempted
}

// fromSearchAttempted looks up the top search hit. There is no further fallback.
func (m *machine) fromSearchAttempted(ctx context.Context) {
	switch {
	case m.searchErr != nil:
		m.degrade(ReasonFault)
		return
	case len(m.titles) == 0:
		m.degrade(ReasonNoResults)
		return
	}

	top := m.titles[0]
	err := m.r.stage(ctx, stageSearchSummary, func(ctx context.Context) error {
		var err error
		m.summary, err = m.r.src.Summary(ctx, top)
		return err
	})

	switch {
	case err != nil:
		m.degrade(ReasonFault)
	case m.hasText():
		m.resolve(ReasonSearch)
	default:
		m.degrade(ReasonNoExtract)
	}
}

// hasText reports whether the current summary truncates to a non-empty description.
func (m *machine) hasText() bool {
	return m.summary.HasExtract() && Truncate(m.summary.Extract) != ""
}

func (m *machine) resolve(reason string) {
	m.state = StateResolved
	m.reason = reason
}

func (m *machine) degrade(reason string) {
	m.state = StateDegraded
	m.reason = reason
}

func (m *machine) outcome() Outcome {
	if m.state != StateResolved {
		return Outcome{
			Text:     Placeholder,
			Degraded: true,
			State:    StateDegraded,
			Reason:   m.reason,
		}
	}

	title := m.summary.Title
	if title == "" {
		title = m.normalized
	}
	return Outcome{
		Text:      Truncate(m.summary.Extract),
		Title:     title,
		Thumbnail: m.summary.Thumbnail,
		ImageURL:  m.summary.ImageURL,
		State:     StateResolved,
		Reason:    m.reason,
	}
}
