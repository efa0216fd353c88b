package repo

import (
	"Studenten/internal/model"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Каждому тесту — своя именованная БД, чтобы shared cache не смешивал данные.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(uuid.NewString(), "-", "") + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{Logger: NewGormLogger(nil), TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkStudent — хелпер для создания студента с именем и фотографиями
func mkStudent(nr int, lastName string, program model.Program, balance string, photos ...string) *model.Student {
	p := program
	s := &model.Student{
		MatriculationNumber: nr,
		Program:             &p,
		Balance:             decimal.RequireFromString(balance),
		Name:                &model.Name{FirstName: "Max", LastName: &lastName},
	}
	for _, caption := range photos {
		s.Photos = append(s.Photos, model.Photo{Caption: caption, ContentType: "image/png"})
	}
	return s
}
