package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/topiclog/internal/domain"
	"github.com/heartmarshall/topiclog/internal/service/user"
)

var _ accounts = &accountsMock{}

type accountsMock struct {
	RegisterFunc        func(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	AuthenticateFunc    func(ctx context.Context, input user.AuthenticateInput) (*domain.User, error)
	SignInFederatedFunc func(ctx context.Context, input user.FederatedInput) (*domain.User, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input user.RegisterInput
		}
		Authenticate []struct {
			Ctx   context.Context
			Input user.AuthenticateInput
		}
		SignInFederated []struct {
			Ctx   context.Context
			Input user.FederatedInput
		}
	}
	lockRegister        sync.RWMutex
	lockAuthenticate    sync.RWMutex
	lockSignInFederated sync.RWMutex
}

func (mock *accountsMock) Register(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("accountsMock.RegisterFunc: method is nil but accounts.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountsMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input user.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountsMock) Authenticate(ctx context.Context, input user.AuthenticateInput) (*domain.User, error) {
	if mock.AuthenticateFunc == nil {
		panic("accountsMock.AuthenticateFunc: method is nil but accounts.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.AuthenticateInput
	}{Ctx: ctx, Input: input}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, input)
}

func (mock *accountsMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Input user.AuthenticateInput
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}

func (mock *accountsMock) SignInFederated(ctx context.Context, input user.FederatedInput) (*domain.User, error) {
	if mock.SignInFederatedFunc == nil {
		panic("accountsMock.SignInFederatedFunc: method is nil but accounts.SignInFederated was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.FederatedInput
	}{Ctx: ctx, Input: input}
	mock.lockSignInFederated.Lock()
	mock.calls.SignInFederated = append(mock.calls.SignInFederated, callInfo)
	mock.lockSignInFederated.Unlock()
	return mock.SignInFederatedFunc(ctx, input)
}

func (mock *accountsMock) SignInFederatedCalls() []struct {
	Ctx   context.Context
	Input user.FederatedInput
} {
	mock.lockSignInFederated.RLock()
	calls := mock.calls.SignInFederated
	mock.lockSignInFederated.RUnlock()
	return calls
}
