package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student — серверная модель студента (агрегат: владеет Name и Photos).
type Student struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Version int64 `gorm:"not null;default:0" json:"version"`

	MatriculationNumber int             `gorm:"not null;uniqueIndex" json:"matriculation_number"`
	Program             *Program        `gorm:"type:varchar(8)" json:"program,omitempty"`
	Balance             decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"balance"`
	Birthday            *Date           `gorm:"type:date" json:"birthday,omitempty"`

	// Связи. Каскад не делегируется ORM: вставка и удаление выполняются явно в транзакции репозитория.
	Name   *Name   `gorm:"foreignKey:StudentID" json:"name,omitempty"`
	Photos []Photo `gorm:"foreignKey:StudentID" json:"photos,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName фиксирует имя таблицы, чтобы оно не зависело от стратегии именования.
func (Student) TableName() string { return "students" }

// Name — имя студента, один к одному.
type Name struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"type:varchar(32);not null" json:"first_name"`
	LastName  *string `gorm:"type:varchar(32)" json:"last_name,omitempty"`
	StudentID int64   `gorm:"not null;uniqueIndex" json:"-"`
}

func (Name) TableName() string { return "names" }

// Photo — метаданные фотографии студента.
type Photo struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Caption     string `gorm:"type:varchar(32);not null" json:"caption"`
	ContentType string `gorm:"type:varchar(16)" json:"content_type"`
	StudentID   int64  `gorm:"not null;index" json:"-"`
}

func (Photo) TableName() string { return "photos" }
