package model

// StudentFile — бинарное содержимое, привязанное к студенту.
// Не является ассоциацией Student: удаление студента файл не затрагивает.
type StudentFile struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Filename  string `gorm:"not null"`
	Mimetype  string `gorm:"not null"`
	Data      []byte `gorm:"not null"`
	StudentID int64  `gorm:"not null;uniqueIndex"`
}

func (StudentFile) TableName() string { return "student_files" }
