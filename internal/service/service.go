// Package service содержит бизнес-логику чтения и записи студентов.
package service

import (
	"Studenten/internal/model"
	"Studenten/internal/search"
	"context"
)

// Reader — операции чтения, доступные транспортному слою.
type Reader interface {
	FindByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error)
	Find(ctx context.Context, c search.Criteria, p search.Pageable) (search.Slice[model.Student], error)
	FindFileByOwnerID(ctx context.Context, id int64) (*model.StudentFile, error)
}

// Writer — операции записи, доступные транспортному слою.
type Writer interface {
	Create(ctx context.Context, s *model.Student) (int64, error)
	Update(ctx context.Context, p UpdateParams) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var (
	_ Reader = (*ReadService)(nil)
	_ Writer = (*WriteService)(nil)
)
