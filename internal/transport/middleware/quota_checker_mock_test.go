package middleware

import (
	"context"
	"sync"
)

var _ quotaChecker = &quotaCheckerMock{}

type quotaCheckerMock struct {
	AllowFunc func(ctx context.Context, userID string) (bool, error)

	calls struct {
		Allow []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockAllow sync.RWMutex
}

func (mock *quotaCheckerMock) Allow(ctx context.Context, userID string) (bool, error) {
	if mock.AllowFunc == nil {
		panic("quotaCheckerMock.AllowFunc: method is nil but quotaChecker.Allow was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(ctx, userID)
}

func (mock *quotaCheckerMock) AllowCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockAllow.RLock()
	calls := mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
