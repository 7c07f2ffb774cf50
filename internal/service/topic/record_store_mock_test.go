package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/topiclog/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	FindUserByIDFunc func(ctx context.Context, id int64) (*domain.User, error)
	AppendRecordFunc func(ctx context.Context, rec domain.NewRecord) (*domain.TopicRecord, error)
	ListRecordsFunc  func(ctx context.Context, userID int64) ([]domain.TopicRecord, error)
	RenameRecordFunc func(ctx context.Context, id int64, title string) error
	DeleteRecordFunc func(ctx context.Context, id int64) error
	ClearRecordsFunc func(ctx context.Context, userID int64) error

	calls struct {
		FindUserByID []struct {
			Ctx context.Context
			Id  int64
		}
		AppendRecord []struct {
			Ctx context.Context
			Rec domain.NewRecord
		}
		ListRecords []struct {
			Ctx    context.Context
			UserID int64
		}
		RenameRecord []struct {
			Ctx   context.Context
			Id    int64
			Title string
		}
		DeleteRecord []struct {
			Ctx context.Context
			Id  int64
		}
		ClearRecords []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockFindUserByID sync.RWMutex
	lockAppendRecord sync.RWMutex
	lockListRecords  sync.RWMutex
	lockRenameRecord sync.RWMutex
	lockDeleteRecord sync.RWMutex
	lockClearRecords sync.RWMutex
}

func (mock *recordStoreMock) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.FindUserByIDFunc == nil {
		panic("recordStoreMock.FindUserByIDFunc: method is nil but recordStore.FindUserByID was just called")
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

func (mock *recordStoreMock) FindUserByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockFindUserByID.RLock()
	calls := mock.calls.FindUserByID
	mock.lockFindUserByID.RUnlock()
	return calls
}

func (mock *recordStoreMock) AppendRecord(ctx context.Context, rec domain.NewRecord) (*domain.TopicRecord, error) {
	if mock.AppendRecordFunc == nil {
		panic("recordStoreMock.AppendRecordFunc: method is nil but recordStore.AppendRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.NewRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppendRecord.Lock()
	mock.calls.AppendRecord = append(mock.calls.AppendRecord, callInfo)
	mock.lockAppendRecord.Unlock()
	return mock.AppendRecordFunc(ctx, rec)
}

func (mock *recordStoreMock) AppendRecordCalls() []struct {
	Ctx context.Context
	Rec domain.NewRecord
} {
	mock.lockAppendRecord.RLock()
	calls := mock.calls.AppendRecord
	mock.lockAppendRecord.RUnlock()
	return calls
}

func (mock *recordStoreMock) ListRecords(ctx context.Context, userID int64) ([]domain.TopicRecord, error) {
	if mock.ListRecordsFunc == nil {
		panic("recordStoreMock.ListRecordsFunc: method is nil but recordStore.ListRecords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, callInfo)
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx, userID)
}

func (mock *recordStoreMock) ListRecordsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockListRecords.RLock()
	calls := mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

func (mock *recordStoreMock) RenameRecord(ctx context.Context, id int64, title string) error {
	if mock.RenameRecordFunc == nil {
		panic("recordStoreMock.RenameRecordFunc: method is nil but recordStore.RenameRecord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    int64
		Title string
	}{Ctx: ctx, Id: id, Title: title}
	mock.lockRenameRecord.Lock()
	mock.calls.RenameRecord = append(mock.calls.RenameRecord, callInfo)
	mock.lockRenameRecord.Unlock()
	return mock.RenameRecordFunc(ctx, id, title)
}

func (mock *recordStoreMock) RenameRecordCalls() []struct {
	Ctx   context.Context
	Id    int64
	Title string
} {
	mock.lockRenameRecord.RLock()
	calls := mock.calls.RenameRecord
	mock.lockRenameRecord.RUnlock()
	return calls
}

func (mock *recordStoreMock) DeleteRecord(ctx context.Context, id int64) error {
	if mock.DeleteRecordFunc == nil {
		panic("recordStoreMock.DeleteRecordFunc: method is nil but recordStore.DeleteRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDeleteRecord.Lock()
	mock.calls.DeleteRecord = append(mock.calls.DeleteRecord, callInfo)
	mock.lockDeleteRecord.Unlock()
	return mock.DeleteRecordFunc(ctx, id)
}

func (mock *recordStoreMock) DeleteRecordCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteRecord.RLock()
	calls := mock.calls.DeleteRecord
	mock.lockDeleteRecord.RUnlock()
	return calls
}

func (mock *recordStoreMock) ClearRecords(ctx context.Context, userID int64) error {
	if mock.ClearRecordsFunc == nil {
		panic("recordStoreMock.ClearRecordsFunc: method is nil but recordStore.ClearRecords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockClearRecords.Lock()
	mock.calls.ClearRecords = append(mock.calls.ClearRecords, callInfo)
	mock.lockClearRecords.Unlock()
	return mock.ClearRecordsFunc(ctx, userID)
}

func (mock *recordStoreMock) ClearRecordsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockClearRecords.RLock()
	calls := mock.calls.ClearRecords
	mock.lockClearRecords.RUnlock()
	return calls
}
