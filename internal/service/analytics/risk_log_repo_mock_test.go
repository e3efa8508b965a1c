package analytics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var _ riskLogRepo = &riskLogRepoMock{}

type riskLogRepoMock struct {
	CreateFunc     func(ctx context.Context, l *domain.RiskLog) (*domain.RiskLog, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.RiskLog
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *riskLogRepoMock) Create(ctx context.Context, l *domain.RiskLog) (*domain.RiskLog, error) {
	if mock.CreateFunc == nil {
		panic("riskLogRepoMock.CreateFunc: method is nil but riskLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.RiskLog
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *riskLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.RiskLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *riskLogRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskLog, error) {
	if mock.ListByUserFunc == nil {
		panic("riskLogRepoMock.ListByUserFunc: method is nil but riskLogRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *riskLogRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
