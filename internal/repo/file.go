package repo

import (
	"Studenten/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FileRepository — бинарные файлы студентов (не более одного на студента).
type FileRepository interface {
	GetByStudentID(ctx context.Context, studentID int64) (*model.StudentFile, error)
	CreateIfAbsent(ctx context.Context, f *model.StudentFile) (bool, error)
}

type fileRepo struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

// GetByStudentID возвращает файл; gorm.ErrRecordNotFound, если его нет.
func (r *fileRepo) GetByStudentID(ctx context.Context, studentID int64) (*model.StudentFile, error) {
	var f model.StudentFile
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Take(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateIfAbsent вставляет файл, если у студента его ещё нет. Возвращает created=true при вставке.
func (r *fileRepo) CreateIfAbsent(ctx context.Context, f *model.StudentFile) (bool, error) {
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}},
			DoNothing: true,
		}).
		Create(f)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
