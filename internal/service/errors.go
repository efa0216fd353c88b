package service

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок сервисов. Конкретные ошибки ниже сопоставляются с ними через errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrInvalidVersion  = errors.New("invalid version")
	ErrOutdatedVersion = errors.New("outdated version")
)

// NotFoundError — нет записи с таким id либо критерии/страница не дали результатов.
// Оба случая намеренно неразличимы для клиента.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	if e.Msg == "" {
		return ErrNotFound.Error()
	}
	return e.Msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateKeyError — матрикулярный номер уже занят.
type DuplicateKeyError struct {
	MatriculationNumber int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("matriculation number %d already exists", e.MatriculationNumber)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// InvalidVersionError — токен версии не соответствует формату "<1-3 цифры>".
type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %s", e.Version)
}

func (e *InvalidVersionError) Is(target error) bool { return target == ErrInvalidVersion }

// OutdatedVersionError — переданная версия устарела.
type OutdatedVersionError struct {
	Version int64
}

func (e *OutdatedVersionError) Error() string {
	return fmt.Sprintf("version %d is outdated", e.Version)
}

func (e *OutdatedVersionError) Is(target error) bool { return target == ErrOutdatedVersion }
