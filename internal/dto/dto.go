// Package dto описывает входные данные записи студентов и их валидацию.
// Используется REST- и GraphQL-адаптерами.
package dto

import (
	"Studenten/internal/model"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// wordStartRe — имя начинается с буквы, цифры или подчёркивания.
var wordStartRe = regexp.MustCompile(`^\w.*`)

var validate = newValidator()

// Validate проверяет структуру по тегам validate.
func Validate(v any) error {
	return validate.Struct(v)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal проверяется по знаку: gte=0 означает неотрицательное значение
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("word_start", func(fl validator.FieldLevel) bool {
		return wordStartRe.MatchString(fl.Field().String())
	})
	return v
}

// NameDTO — имя во входных данных.
type NameDTO struct {
	FirstName string  `json:"first_name" validate:"required,max=32,word_start"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=32,word_start"`
}

// PhotoDTO — фотография во входных данных.
type PhotoDTO struct {
	Caption     string `json:"caption" validate:"required,max=32"`
	ContentType string `json:"content_type" validate:"max=16"`
}

// StudentUpdateDTO — изменяемые поля студента (PUT).
type StudentUpdateDTO struct {
	MatriculationNumber int             `json:"matriculation_number" validate:"gt=0"`
	Program             *string         `json:"program,omitempty" validate:"omitempty,oneof=WI IIB ET MB"`
	Balance             decimal.Decimal `json:"balance" validate:"gte=0"`
	Birthday            *string         `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// StudentDTO — новый студент с именем и фотографиями (POST).
type StudentDTO struct {
	StudentUpdateDTO
	Name   *NameDTO   `json:"name" validate:"required"`
	Photos []PhotoDTO `json:"photos,omitempty" validate:"omitempty,dive"`
}

// ToModel переносит скалярные поля; вызывать после успешной валидации.
func (d StudentUpdateDTO) ToModel() *model.Student {
	s := &model.Student{
		MatriculationNumber: d.MatriculationNumber,
		Balance:             d.Balance,
	}
	if d.Program != nil {
		p := model.Program(*d.Program)
		s.Program = &p
	}
	if d.Birthday != nil {
		if bd, err := model.ParseDate(*d.Birthday); err == nil {
			s.Birthday = &bd
		}
	}
	return s
}

// ToModel строит агрегат студента с именем и фотографиями.
func (d StudentDTO) ToModel() *model.Student {
	s := d.StudentUpdateDTO.ToModel()
	if d.Name != nil {
		s.Name = &model.Name{FirstName: d.Name.FirstName, LastName: d.Name.LastName}
	}
	for _, p := range d.Photos {
		s.Photos = append(s.Photos, model.Photo{Caption: p.Caption, ContentType: p.ContentType})
	}
	return s
}
