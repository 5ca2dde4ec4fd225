package fact

import (
	"context"
	"sync"
)

var _ factOracle = &factOracleMock{}

type factOracleMock struct {
	GenerateFunc func(ctx context.Context, topic string) (string, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Topic string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *factOracleMock) Generate(ctx context.Context, topic string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("factOracleMock.GenerateFunc: method is nil but factOracle.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic string
	}{Ctx: ctx, Topic: topic}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, topic)
}

func (mock *factOracleMock) GenerateCalls() []struct {
	Ctx   context.Context
	Topic string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
