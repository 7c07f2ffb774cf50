package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/topiclog/internal/domain"
)

var _ userStore = &userStoreMock{}

type userStoreMock struct {
	CreateUserFunc     func(ctx context.Context, username string, credential string, displayName *string) (int64, error)
	FindUserByNameFunc func(ctx context.Context, username string) (*domain.User, error)
	FindUserByIDFunc   func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		CreateUser []struct {
			Ctx         context.Context
			Username    string
			Credential  string
			DisplayName *string
		}
		FindUserByName []struct {
			Ctx      context.Context
			Username string
		}
		FindUserByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockCreateUser     sync.RWMutex
	lockFindUserByName sync.RWMutex
	lockFindUserByID   sync.RWMutex
}

func (mock *userStoreMock) CreateUser(ctx context.Context, username string, credential string, displayName *string) (int64, error) {
	if mock.CreateUserFunc == nil {
		panic("userStoreMock.CreateUserFunc: method is nil but userStore.CreateUser was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Username    string
		Credential  string
		DisplayName *string
	}{Ctx: ctx, Username: username, Credential: credential, DisplayName: displayName}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, username, credential, displayName)
}

func (mock *userStoreMock) CreateUserCalls() []struct {
	Ctx         context.Context
	Username    string
	Credential  string
	DisplayName *string
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userStoreMock) FindUserByName(ctx context.Context, username string) (*domain.User, error) {
	if mock.FindUserByNameFunc == nil {
		panic("userStoreMock.FindUserByNameFunc: method is nil but userStore.FindUserByName was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockFindUserByName.Lock()
	mock.calls.FindUserByName = append(mock.calls.FindUserByName, callInfo)
	mock.lockFindUserByName.Unlock()
	return mock.FindUserByNameFunc(ctx, username)
}

func (mock *userStoreMock) FindUserByNameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockFindUserByName.RLock()
	calls := mock.calls.FindUserByName
	mock.lockFindUserByName.RUnlock()
	return calls
}

func (mock *userStoreMock) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.FindUserByIDFunc == nil {
		panic("userStoreMock.FindUserByIDFunc: method is nil but userStore.FindUserByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockFindUserByID.Lock()
	mock.calls.FindUserByID = append(mock.calls.FindUserByID, callInfo)
	mock.lockFindUserByID.Unlock()
	return mock.FindUserByIDFunc(ctx, id)
}

func (mock *userStoreMock) FindUserByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockFindUserByID.RLock()
	calls := mock.calls.FindUserByID
	mock.lockFindUserByID.RUnlock()
	return calls
}
