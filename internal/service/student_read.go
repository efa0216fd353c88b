package service

import (
	"Studenten/internal/model"
	"Studenten/internal/repo"
	"Studenten/internal/search"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReadService — единая точка чтения студентов.
type ReadService struct {
	students repo.StudentRepository
	files    repo.FileRepository
	log      *zap.SugaredLogger
}

func NewReadService(students repo.StudentRepository, files repo.FileRepository, log *zap.SugaredLogger) *ReadService {
	return &ReadService{students: students, files: files, log: log}
}

// FindByID возвращает студента с именем и, по запросу, фотографиями.
func (s *ReadService) FindByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error) {
	st, err := s.students.GetByID(ctx, id, withPhotos)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Msg: fmt.Sprintf("no student with id %d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	s.log.Debugw("student found", "id", id, "version", st.Version, "withPhotos", withPhotos)
	return st, nil
}

// Find ищет студентов по критериям. Пустой результат — NotFoundError.
func (s *ReadService) Find(ctx context.Context, c search.Criteria, p search.Pageable) (search.Slice[model.Student], error) {
	c = c.Compact()
	s.log.Debugw("find students", "criteria", c.String(), "page", p.Number, "size", p.Size)

	if c.Empty() {
		list, total, err := s.students.Find(ctx, nil, p)
		if err != nil {
			return search.Slice[model.Student]{}, fmt.Errorf("find students: %w", err)
		}
		if len(list) == 0 {
			return search.Slice[model.Student]{}, &NotFoundError{Msg: fmt.Sprintf("invalid page %d", p.Number)}
		}
		return search.Slice[model.Student]{Content: list, TotalElements: total}, nil
	}

	if v, ok := c[search.KeyProgram]; ok && !model.Program(v).Valid() {
		return search.Slice[model.Student]{}, &NotFoundError{Msg: "invalid search criteria"}
	}

	list, total, err := s.students.Find(ctx, c, p)
	if err != nil {
		return search.Slice[model.Student]{}, fmt.Errorf("find students: %w", err)
	}
	if len(list) == 0 {
		return search.Slice[model.Student]{}, &NotFoundError{
			Msg: fmt.Sprintf("no students found for %s, page %d", c, p.Number),
		}
	}
	s.log.Debugw("students found", "count", len(list), "total", total)
	return search.Slice[model.Student]{Content: list, TotalElements: total}, nil
}

// FindFileByOwnerID возвращает файл студента или nil, если файла нет.
func (s *ReadService) FindFileByOwnerID(ctx context.Context, id int64) (*model.StudentFile, error) {
	f, err := s.files.GetByStudentID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get file of student %d: %w", id, err)
	}
	return f, nil
}
