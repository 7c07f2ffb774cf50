package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/topiclog/internal/provider"
)

var _ source = &sourceMock{}

type sourceMock struct {
	SummaryFunc func(ctx context.Context, title string) (*provider.Summary, error)
	SearchFunc  func(ctx context.Context, query string) ([]string, error)

	calls struct {
		Summary []struct {
			Ctx   context.Context
			Title string
		}
		Search []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockSummary sync.RWMutex
	lockSearch  sync.RWMutex
}

func (mock *sourceMock) Summary(ctx context.Context, title string) (*provider.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("sourceMock.SummaryFunc: method is nil but source.Summary was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Title string
	}{Ctx: ctx, Title: title}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, title)
}

func (mock *sourceMock) SummaryCalls() []struct {
	Ctx   context.Context
	Title string
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}

func (mock *sourceMock) Search(ctx context.Context, query string) ([]string, error) {
	if mock.SearchFunc == nil {
		panic("sourceMock.SearchFunc: method is nil but source.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *sourceMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
