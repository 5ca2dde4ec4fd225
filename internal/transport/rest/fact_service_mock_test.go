package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
	"github.com/heartmarshall/factfinder-backend/internal/service/fact"
)

var _ factService = &factServiceMock{}

type factServiceMock struct {
	ListHistoryFunc func(ctx context.Context) ([]domain.RequestLogEntry, error)
	SubmitFunc      func(ctx context.Context, input fact.SubmitInput) (*fact.SubmitResult, error)

	calls struct {
		ListHistory []struct {
			Ctx context.Context
		}
		Submit []struct {
			Ctx   context.Context
			Input fact.SubmitInput
		}
	}
	lockListHistory sync.RWMutex
	lockSubmit      sync.RWMutex
}

func (mock *factServiceMock) ListHistory(ctx context.Context) ([]domain.RequestLogEntry, error) {
	if mock.ListHistoryFunc == nil {
		panic("factServiceMock.ListHistoryFunc: method is nil but factService.ListHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx)
}

func (mock *factServiceMock) ListHistoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *factServiceMock) Submit(ctx context.Context, input fact.SubmitInput) (*fact.SubmitResult, error) {
	if mock.SubmitFunc == nil {
		panic("factServiceMock.SubmitFunc: method is nil but factService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input fact.SubmitInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *factServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input fact.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
