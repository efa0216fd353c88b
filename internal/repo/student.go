package repo

import (
	"Studenten/internal/model"
	"Studenten/internal/search"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVersionConflict — условное обновление не затронуло ни одной строки:
// запись удалена или её версия уже изменилась.
var ErrVersionConflict = errors.New("version conflict")

// StudentRepository описывает доступ к студентам.
type StudentRepository interface {
	GetByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error)
	Find(ctx context.Context, c search.Criteria, p search.Pageable) ([]model.Student, int64, error)
	ExistsByMatriculationNumber(ctx context.Context, nr int) (bool, error)
	Create(ctx context.Context, s *model.Student) error
	UpdateWithVersion(ctx context.Context, id, expectedVersion int64, updates map[string]any) (int64, error)
	Delete(ctx context.Context, s *model.Student) (bool, error)
}

type studentRepo struct {
	db     *gorm.DB
	schema Schema
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db, schema: DefaultSchema()}
}

// GetByID возвращает студента с именем; gorm.ErrRecordNotFound, если его нет.
func (r *studentRepo) GetByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error) {
	var s model.Student
	if err := BuildByID(r.db.WithContext(ctx), r.schema, id, withPhotos).Take(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Find возвращает страницу студентов, упорядоченную по id, и общее число совпадений.
func (r *studentRepo) Find(ctx context.Context, c search.Criteria, p search.Pageable) ([]model.Student, int64, error) {
	var total int64
	if err := Build(r.db.WithContext(ctx), r.schema, c, search.Unpaged()).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	var list []model.Student
	err := Build(r.db.WithContext(ctx), r.schema, c, p).
		Order(clause.OrderByColumn{Column: r.schema.column("id")}).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *studentRepo) ExistsByMatriculationNumber(ctx context.Context, nr int) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("matriculation_number = ?", nr).
		Count(&n).Error
	return n > 0, err
}

// Create сохраняет студента вместе с именем и фотографиями в одной транзакции.
// Каскад выполняется явно: сначала студент, затем зависимые записи с проставленным StudentID.
func (r *studentRepo) Create(ctx context.Context, s *model.Student) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
			return err
		}
		if s.Name != nil {
			s.Name.StudentID = s.ID
			if err := tx.Create(s.Name).Error; err != nil {
				return err
			}
		}
		for i := range s.Photos {
			s.Photos[i].StudentID = s.ID
			if err := tx.Create(&s.Photos[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && IsDuplicateKey(err) {
		return gorm.ErrDuplicatedKey
	}
	return err
}

// UpdateWithVersion применяет updates только если текущая версия равна expectedVersion.
// Версия увеличивается в том же UPDATE; при конфликте возвращается ErrVersionConflict.
func (r *studentRepo) UpdateWithVersion(ctx context.Context, id, expectedVersion int64, updates map[string]any) (int64, error) {
	values := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		values[k] = v
	}
	values["version"] = gorm.Expr("version + ?", 1)

	tx := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(values)
	if tx.Error != nil {
		if IsDuplicateKey(tx.Error) {
			return 0, gorm.ErrDuplicatedKey
		}
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}

// Delete удаляет фотографии, имя и самого студента в одной транзакции.
// Возвращает false, если строки студента уже не было.
func (r *studentRepo) Delete(ctx context.Context, s *model.Student) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", s.ID).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", s.ID).Delete(&model.Name{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Student{}, s.ID)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// IsDuplicateKey распознаёт нарушение уникальности. Postgres-драйвер переводит ошибку
// в gorm.ErrDuplicatedKey (TranslateError), для modernc SQLite проверяется текст ошибки.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
