package riskscan

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeUserFunc func(ctx context.Context, userID uuid.UUID) (domain.RiskAnalysis, error)
	RiskWindowFunc  func() (string, string)

	calls struct {
		AnalyzeUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		RiskWindow []struct{}
	}
	lockAnalyzeUser sync.RWMutex
	lockRiskWindow  sync.RWMutex
}

func (mock *analyzerMock) AnalyzeUser(ctx context.Context, userID uuid.UUID) (domain.RiskAnalysis, error) {
	if mock.AnalyzeUserFunc == nil {
		panic("analyzerMock.AnalyzeUserFunc: method is nil but analyzer.AnalyzeUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockAnalyzeUser.Lock()
	mock.calls.AnalyzeUser = append(mock.calls.AnalyzeUser, callInfo)
	mock.lockAnalyzeUser.Unlock()
	return mock.AnalyzeUserFunc(ctx, userID)
}

func (mock *analyzerMock) AnalyzeUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockAnalyzeUser.RLock()
	calls := mock.calls.AnalyzeUser
	mock.lockAnalyzeUser.RUnlock()
	return calls
}

func (mock *analyzerMock) RiskWindow() (string, string) {
	if mock.RiskWindowFunc == nil {
		panic("analyzerMock.RiskWindowFunc: method is nil but analyzer.RiskWindow was just called")
	}
	mock.lockRiskWindow.Lock()
	mock.calls.RiskWindow = append(mock.calls.RiskWindow, struct{}{})
	mock.lockRiskWindow.Unlock()
	return mock.RiskWindowFunc()
}
