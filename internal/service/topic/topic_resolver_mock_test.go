package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/topiclog/internal/service/resolver"
)

var _ topicResolver = &topicResolverMock{}

type topicResolverMock struct {
	ResolveFunc func(ctx context.Context, query string) resolver.Outcome

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *topicResolverMock) Resolve(ctx context.Context, query string) resolver.Outcome {
	if mock.ResolveFunc == nil {
		panic("topicResolverMock.ResolveFunc: method is nil but topicResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, query)
}

func (mock *topicResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
