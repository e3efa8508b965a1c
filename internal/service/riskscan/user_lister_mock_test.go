package riskscan

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ userLister = &userListerMock{}

type userListerMock struct {
	ListUserIDsFunc func(ctx context.Context, since string) ([]uuid.UUID, error)

	calls struct {
		ListUserIDs []struct {
			Ctx   context.Context
			Since string
		}
	}
	lockListUserIDs sync.RWMutex
}

func (mock *userListerMock) ListUserIDs(ctx context.Context, since string) ([]uuid.UUID, error) {
	if mock.ListUserIDsFunc == nil {
		panic("userListerMock.ListUserIDsFunc: method is nil but userLister.ListUserIDs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since string
	}{Ctx: ctx, Since: since}
	mock.lockListUserIDs.Lock()
	mock.calls.ListUserIDs = append(mock.calls.ListUserIDs, callInfo)
	mock.lockListUserIDs.Unlock()
	return mock.ListUserIDsFunc(ctx, since)
}

func (mock *userListerMock) ListUserIDsCalls() []struct {
	Ctx   context.Context
	Since string
} {
	mock.lockListUserIDs.RLock()
	calls := mock.calls.ListUserIDs
	mock.lockListUserIDs.RUnlock()
	return calls
}
