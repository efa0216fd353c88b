package service

import (
	"Studenten/internal/model"
	"Studenten/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// versionPattern — токен версии в формате ETag: "<1-3 цифры>".
var versionPattern = regexp.MustCompile(`^"(\d{1,3})"$`)

// FormatVersion формирует токен версии для ETag/If-Match.
func FormatVersion(v int64) string {
	return `"` + strconv.FormatInt(v, 10) + `"`
}

// ParseVersion извлекает номер версии из токена.
func ParseVersion(token string) (int64, error) {
	m := versionPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, &InvalidVersionError{Version: token}
	}
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &InvalidVersionError{Version: token}
	}
	return v, nil
}

// UpdateParams — вход Update: id, новые значения и токен версии клиента.
type UpdateParams struct {
	ID      int64
	Student *model.Student
	Version string
}

// WriteService — создание, изменение и удаление студентов.
type WriteService struct {
	students repo.StudentRepository
	files    repo.FileRepository
	log      *zap.SugaredLogger
}

func NewWriteService(students repo.StudentRepository, files repo.FileRepository, log *zap.SugaredLogger) *WriteService {
	return &WriteService{students: students, files: files, log: log}
}

// Create сохраняет нового студента с именем и фотографиями и возвращает его id.
func (s *WriteService) Create(ctx context.Context, st *model.Student) (int64, error) {
	exists, err := s.students.ExistsByMatriculationNumber(ctx, st.MatriculationNumber)
	if err != nil {
		return 0, fmt.Errorf("check matriculation number: %w", err)
	}
	if exists {
		return 0, &DuplicateKeyError{MatriculationNumber: st.MatriculationNumber}
	}

	st.ID = 0
	st.Version = 0
	if err := s.students.Create(ctx, st); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, &DuplicateKeyError{MatriculationNumber: st.MatriculationNumber}
		}
		return 0, fmt.Errorf("create student: %w", err)
	}
	s.log.Debugw("student created", "id", st.ID, "matriculationNumber", st.MatriculationNumber)
	return st.ID, nil
}

// Update применяет изменяемые поля при актуальной версии и возвращает новую версию.
// Версия клиента меньше сохранённой — OutdatedVersionError; большая версия принимается.
// Проигравший гонку за ту же версию получает OutdatedVersionError от условного UPDATE.
func (s *WriteService) Update(ctx context.Context, p UpdateParams) (int64, error) {
	version, err := ParseVersion(p.Version)
	if err != nil {
		return 0, err
	}

	stored, err := s.students.GetByID(ctx, p.ID, false)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &NotFoundError{Msg: fmt.Sprintf("no student with id %d", p.ID)}
	}
	if err != nil {
		return 0, fmt.Errorf("get student %d: %w", p.ID, err)
	}
	if version < stored.Version {
		return 0, &OutdatedVersionError{Version: version}
	}

	// id, имя, фотографии и created_at из входа не берутся;
	// незаданные program и birthday сохраняют прежние значения
	updates := map[string]any{
		"matriculation_number": p.Student.MatriculationNumber,
		"balance":              p.Student.Balance,
	}
	if p.Student.Program != nil {
		updates["program"] = p.Student.Program
	}
	if p.Student.Birthday != nil {
		updates["birthday"] = p.Student.Birthday
	}
	newVersion, err := s.students.UpdateWithVersion(ctx, p.ID, stored.Version, updates)
	switch {
	case errors.Is(err, repo.ErrVersionConflict):
		return 0, &OutdatedVersionError{Version: version}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return 0, &DuplicateKeyError{MatriculationNumber: p.Student.MatriculationNumber}
	case err != nil:
		return 0, fmt.Errorf("update student %d: %w", p.ID, err)
	}
	s.log.Debugw("student updated", "id", p.ID, "version", newVersion)
	return newVersion, nil
}

// Delete удаляет студента с именем и фотографиями. Файл студента не удаляется.
func (s *WriteService) Delete(ctx context.Context, id int64) (bool, error) {
	st, err := s.students.GetByID(ctx, id, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, &NotFoundError{Msg: fmt.Sprintf("no student with id %d", id)}
	}
	if err != nil {
		return false, fmt.Errorf("get student %d: %w", id, err)
	}

	deleted, err := s.students.Delete(ctx, st)
	if err != nil {
		return false, fmt.Errorf("delete student %d: %w", id, err)
	}
	s.log.Debugw("student deleted", "id", id, "deleted", deleted, "photos", len(st.Photos))
	return deleted, nil
}

// SaveFile сохраняет файл студента, если его ещё нет. Возвращает true при вставке.
func (s *WriteService) SaveFile(ctx context.Context, f *model.StudentFile) (bool, error) {
	created, err := s.files.CreateIfAbsent(ctx, f)
	if err != nil {
		return false, fmt.Errorf("save file of student %d: %w", f.StudentID, err)
	}
	return created, nil
}
