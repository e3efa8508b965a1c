package diary

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

var _ commenter = &commenterMock{}

type commenterMock struct {
	CommentFunc func(ctx context.Context, f domain.DiaryFields) (string, error)

	calls struct {
		Comment []struct {
			F domain.DiaryFields
		}
	}
	lockComment sync.RWMutex
}

func (mock *commenterMock) Comment(ctx context.Context, f domain.DiaryFields) (string, error) {
	if mock.CommentFunc == nil {
		panic("commenterMock.CommentFunc: method is nil but commenter.Comment was just called")
	}
	mock.lockComment.Lock()
	mock.calls.Comment = append(mock.calls.Comment, struct {
		F domain.DiaryFields
	}{f})
	mock.lockComment.Unlock()
	return mock.CommentFunc(ctx, f)
}

func (mock *commenterMock) CommentCalls() []struct {
	F domain.DiaryFields
} {
	mock.lockComment.RLock()
	defer mock.lockComment.RUnlock()
	return mock.calls.Comment
}
