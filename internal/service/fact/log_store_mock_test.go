package fact

import (
	"context"
	"sync"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
)

var _ logStore = &logStoreMock{}

type logStoreMock struct {
	AppendFunc     func(ctx context.Context, entry *domain.RequestLogEntry) error
	ListRecentFunc func(ctx context.Context, userID string, limit int) ([]domain.RequestLogEntry, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry *domain.RequestLogEntry
		}
		ListRecent []struct {
			Ctx    context.Context
			UserID string
			Limit  int
		}
	}
	lockAppend     sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *logStoreMock) Append(ctx context.Context, entry *domain.RequestLogEntry) error {
	if mock.AppendFunc == nil {
		panic("logStoreMock.AppendFunc: method is nil but logStore.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.RequestLogEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *logStoreMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry *domain.RequestLogEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *logStoreMock) ListRecent(ctx context.Context, userID string, limit int) ([]domain.RequestLogEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("logStoreMock.ListRecentFunc: method is nil but logStore.ListRecent was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, limit)
}

func (mock *logStoreMock) ListRecentCalls() []struct {
	Ctx    context.Context
	UserID string
	Limit  int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
