package gql

import (
	"Studenten/internal/model"
	"Studenten/internal/search"
	"Studenten/internal/service"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockReader struct{ mock.Mock }

func (m *mockReader) FindByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error) {
	args := m.Called(ctx, id, withPhotos)
	if v, ok := args.Get(0).(*model.Student); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockReader) Find(ctx context.Context, c search.Criteria, p search.Pageable) (search.Slice[model.Student], error) {
	args := m.Called(ctx, c, p)
	return args.Get(0).(search.Slice[model.Student]), args.Error(1)
}
func (m *mockReader) FindFileByOwnerID(ctx context.Context, id int64) (*model.StudentFile, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.StudentFile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ service.Reader = (*mockReader)(nil)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) Create(ctx context.Context, s *model.Student) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockWriter) Update(ctx context.Context, p service.UpdateParams) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockWriter) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ service.Writer = (*mockWriter)(nil)
