package repo

import (
	"Studenten/internal/model"
	"Studenten/internal/search"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStudentRepository_Create_GetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	s := mkStudent(12345, "Anderson", model.ProgramWI, "1.00", "front", "side")
	require.NoError(t, r.Create(ctx, s))
	assert.NotZero(t, s.ID)
	assert.Equal(t, s.ID, s.Name.StudentID)

	// без фотографий
	got, err := r.GetByID(ctx, s.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Version)
	assert.Equal(t, 12345, got.MatriculationNumber)
	assert.True(t, decimal.RequireFromString("1.00").Equal(got.Balance))
	if assert.NotNil(t, got.Name) {
		assert.Equal(t, "Anderson", *got.Name.LastName)
	}
	assert.Empty(t, got.Photos)

	// с фотографиями
	got, err = r.GetByID(ctx, s.ID, true)
	require.NoError(t, err)
	assert.Len(t, got.Photos, 2)

	// несуществующий id
	got, err = r.GetByID(ctx, 999, false)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStudentRepository_Create_DuplicateKeyRollsBack(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, mkStudent(1, "Smith", model.ProgramET, "0")))

	err := r.Create(ctx, mkStudent(1, "Other", model.ProgramMB, "0"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// в таблице имён осталась только первая запись
	var names int64
	require.NoError(t, db.Model(&model.Name{}).Count(&names).Error)
	assert.Equal(t, int64(1), names)

	exists, err := r.ExistsByMatriculationNumber(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = r.ExistsByMatriculationNumber(ctx, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStudentRepository_UpdateWithVersion_SuccessAndConflict(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	s := mkStudent(100, "Meier", model.ProgramIIB, "1.00")
	require.NoError(t, r.Create(ctx, s))

	// успех при совпадении версии
	newVer, err := r.UpdateWithVersion(ctx, s.ID, 0, map[string]any{"balance": decimal.RequireFromString("2.00")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), newVer)

	got, err := r.GetByID(ctx, s.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, decimal.RequireFromString("2.00").Equal(got.Balance))

	// конфликт версии: строка не изменилась
	_, err = r.UpdateWithVersion(ctx, s.ID, 0, map[string]any{"balance": decimal.RequireFromString("3.00")})
	assert.ErrorIs(t, err, ErrVersionConflict)

	got, err = r.GetByID(ctx, s.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, decimal.RequireFromString("2.00").Equal(got.Balance))

	// несуществующая запись — тоже конфликт
	_, err = r.UpdateWithVersion(ctx, 999, 0, nil)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestStudentRepository_Delete_RemovesOwnedRows(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	s := mkStudent(7, "Fernandez", model.ProgramWI, "0", "a", "b", "c")
	require.NoError(t, r.Create(ctx, s))
	keep := mkStudent(8, "Smith", model.ProgramWI, "0", "x")
	require.NoError(t, r.Create(ctx, keep))

	loaded, err := r.GetByID(ctx, s.ID, true)
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, loaded)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = r.GetByID(ctx, s.ID, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var orphans int64
	require.NoError(t, db.Model(&model.Photo{}).Where("student_id = ?", s.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	require.NoError(t, db.Model(&model.Name{}).Where("student_id = ?", s.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	// соседняя запись не затронута
	other, err := r.GetByID(ctx, keep.ID, true)
	require.NoError(t, err)
	assert.Len(t, other.Photos, 1)

	// повторное удаление ничего не затрагивает
	deleted, err = r.Delete(ctx, loaded)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStudentRepository_Find(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	for i, ln := range []string{"Anderson", "Fernandez", "Smith", "Brandt"} {
		program := model.ProgramWI
		if i%2 == 1 {
			program = model.ProgramET
		}
		require.NoError(t, r.Create(ctx, mkStudent(1000+i, ln, program, "1.50")))
	}

	t.Run("empty criteria paginated", func(t *testing.T) {
		list, total, err := r.Find(ctx, nil, search.Pageable{Number: 1, Size: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		if assert.Len(t, list, 1) {
			assert.Equal(t, 1003, list[0].MatriculationNumber)
		}
	})

	t.Run("unpaged returns all", func(t *testing.T) {
		list, total, err := r.Find(ctx, search.Criteria{}, search.Unpaged())
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, list, 4)
	})

	t.Run("name substring case-insensitive", func(t *testing.T) {
		list, total, err := r.Find(ctx, search.Criteria{search.KeyLastName: "AN"}, search.Unpaged())
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		var got []string
		for _, s := range list {
			got = append(got, *s.Name.LastName)
		}
		assert.Equal(t, []string{"Anderson", "Fernandez", "Brandt"}, got)
	})

	t.Run("matriculation number is a lower bound", func(t *testing.T) {
		list, total, err := r.Find(ctx, search.Criteria{search.KeyMatriculationNumber: "1002"}, search.Unpaged())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("non-numeric matriculation number is ignored", func(t *testing.T) {
		_, total, err := r.Find(ctx, search.Criteria{search.KeyMatriculationNumber: "abc"}, search.Unpaged())
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("conjunction of filters", func(t *testing.T) {
		list, total, err := r.Find(ctx, search.Criteria{
			search.KeyName:    "an",
			search.KeyProgram: "ET",
		}, search.DefaultPageable())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("unknown keys and empty values are absent", func(t *testing.T) {
		_, total, err := r.Find(ctx, search.Criteria{"shoe_size": "42", search.KeyProgram: " "}, search.Unpaged())
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("no matches", func(t *testing.T) {
		list, total, err := r.Find(ctx, search.Criteria{search.KeyLastName: "zzz"}, search.DefaultPageable())
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, list)
	})
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicateKey(gorm.ErrRecordNotFound))
}

func TestStudentRepository_Find_NameWildcardsAreLiteral(t *testing.T) {
	db := newTestDB(t)
	r := NewStudentRepository(db)
	ctx := context.Background()

	for i, ln := range []string{"O_Neil", "Olsen", "Ober%hof"} {
		require.NoError(t, r.Create(ctx, mkStudent(2000+i, ln, model.ProgramWI, "1.00")))
	}

	lastNames := func(c search.Criteria) []string {
		t.Helper()
		list, _, err := r.Find(ctx, c, search.Unpaged())
		require.NoError(t, err)
		var got []string
		for _, s := range list {
			got = append(got, *s.Name.LastName)
		}
		return got
	}

	assert.Equal(t, []string{"O_Neil"}, lastNames(search.Criteria{search.KeyLastName: "o_"}))
	assert.Equal(t, []string{"O_Neil"}, lastNames(search.Criteria{search.KeyLastName: "_"}))
	assert.Equal(t, []string{"Ober%hof"}, lastNames(search.Criteria{search.KeyLastName: "%"}))
	assert.Empty(t, lastNames(search.Criteria{search.KeyLastName: `\`}))
}
