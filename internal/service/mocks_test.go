package service

import (
	"Studenten/internal/model"
	"Studenten/internal/repo"
	"Studenten/internal/search"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки для StudentRepository и FileRepository
type mockStudentRepo struct{ mock.Mock }

func (m *mockStudentRepo) GetByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error) {
	args := m.Called(ctx, id, withPhotos)
	if v, ok := args.Get(0).(*model.Student); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStudentRepo) Find(ctx context.Context, c search.Criteria, p search.Pageable) ([]model.Student, int64, error) {
	args := m.Called(ctx, c, p)
	if v, ok := args.Get(0).([]model.Student); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}
func (m *mockStudentRepo) ExistsByMatriculationNumber(ctx context.Context, nr int) (bool, error) {
	args := m.Called(ctx, nr)
	return args.Bool(0), args.Error(1)
}
func (m *mockStudentRepo) Create(ctx context.Context, s *model.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *mockStudentRepo) UpdateWithVersion(ctx context.Context, id, expectedVersion int64, updates map[string]any) (int64, error) {
	args := m.Called(ctx, id, expectedVersion, updates)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockStudentRepo) Delete(ctx context.Context, s *model.Student) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

var _ repo.StudentRepository = (*mockStudentRepo)(nil)

type mockFileRepo struct{ mock.Mock }

func (m *mockFileRepo) GetByStudentID(ctx context.Context, studentID int64) (*model.StudentFile, error) {
	args := m.Called(ctx, studentID)
	if v, ok := args.Get(0).(*model.StudentFile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) CreateIfAbsent(ctx context.Context, f *model.StudentFile) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

var _ repo.FileRepository = (*mockFileRepo)(nil)
