package diary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var _ diaryRepo = &diaryRepoMock{}

type diaryRepoMock struct {
	CreateFunc      func(ctx context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	GetByDateFunc   func(ctx context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error)
	UpdateFunc      func(ctx context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error)
	DeleteFunc      func(ctx context.Context, userID, id uuid.UUID, date string) error
	ListAllFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error)
	ListByMonthFunc func(ctx context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error)

	calls struct {
		Create []struct {
			UserID uuid.UUID
			Date   string
			F      domain.DiaryFields
		}
		GetByDate []struct {
			UserID uuid.UUID
			Date   string
		}
		Update []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Date   string
			F      domain.DiaryFields
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Date   string
		}
		ListAll []struct {
			UserID uuid.UUID
		}
		ListByMonth []struct {
			UserID uuid.UUID
			Month  string
		}
	}
	lockCreate      sync.RWMutex
	lockGetByDate   sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockListAll     sync.RWMutex
	lockListByMonth sync.RWMutex
}

func (mock *diaryRepoMock) Create(ctx context.Context, userID uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	if mock.CreateFunc == nil {
		panic("diaryRepoMock.CreateFunc: method is nil but diaryRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		UserID uuid.UUID
		Date   string
		F      domain.DiaryFields
	}{userID, date, f})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, date, f)
}

func (mock *diaryRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Date   string
	F      domain.DiaryFields
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *diaryRepoMock) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.DiaryEntry, error) {
	if mock.GetByDateFunc == nil {
		panic("diaryRepoMock.GetByDateFunc: method is nil but diaryRepo.GetByDate was just called")
	}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, struct {
		UserID uuid.UUID
		Date   string
	}{userID, date})
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, userID, date)
}

func (mock *diaryRepoMock) GetByDateCalls() []struct {
	UserID uuid.UUID
	Date   string
} {
	mock.lockGetByDate.RLock()
	defer mock.lockGetByDate.RUnlock()
	return mock.calls.GetByDate
}

func (mock *diaryRepoMock) Update(ctx context.Context, userID, id uuid.UUID, date string, f domain.DiaryFields) (*domain.DiaryEntry, error) {
	if mock.UpdateFunc == nil {
		panic("diaryRepoMock.UpdateFunc: method is nil but diaryRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Date   string
		F      domain.DiaryFields
	}{userID, id, date, f})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, date, f)
}

func (mock *diaryRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Date   string
	F      domain.DiaryFields
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *diaryRepoMock) Delete(ctx context.Context, userID, id uuid.UUID, date string) error {
	if mock.DeleteFunc == nil {
		panic("diaryRepoMock.DeleteFunc: method is nil but diaryRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Date   string
	}{userID, id, date})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id, date)
}

func (mock *diaryRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Date   string
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *diaryRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.DiaryEntry, error) {
	if mock.ListAllFunc == nil {
		panic("diaryRepoMock.ListAllFunc: method is nil but diaryRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct {
		UserID uuid.UUID
	}{userID})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *diaryRepoMock) ListByMonth(ctx context.Context, userID uuid.UUID, month string) ([]domain.EmotionMark, error) {
	if mock.ListByMonthFunc == nil {
		panic("diaryRepoMock.ListByMonthFunc: method is nil but diaryRepo.ListByMonth was just called")
	}
	mock.lockListByMonth.Lock()
	mock.calls.ListByMonth = append(mock.calls.ListByMonth, struct {
		UserID uuid.UUID
		Month  string
	}{userID, month})
	mock.lockListByMonth.Unlock()
	return mock.ListByMonthFunc(ctx, userID, month)
}

func (mock *diaryRepoMock) ListByMonthCalls() []struct {
	UserID uuid.UUID
	Month  string
} {
	mock.lockListByMonth.RLock()
	defer mock.lockListByMonth.RUnlock()
	return mock.calls.ListByMonth
}
