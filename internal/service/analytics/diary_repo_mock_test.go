package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var _ diaryRepo = &diaryRepoMock{}

type diaryRepoMock struct {
	ListAllFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   string
			To     string
		}
	}
	lockListAll   sync.RWMutex
	lockListRange sync.RWMutex
}

func (mock *diaryRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	if mock.ListAllFunc == nil {
		panic("diaryRepoMock.ListAllFunc: method is nil but diaryRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *diaryRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *diaryRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.DiaryEntry, error) {
	if mock.ListRangeFunc == nil {
		panic("diaryRepoMock.ListRangeFunc: method is nil but diaryRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   string
		To     string
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *diaryRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   string
	To     string
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}
