// Package seed заполняет базу тестовыми студентами из YAML-файла.
package seed

import (
	"Studenten/internal/dto"
	"Studenten/internal/model"
	"Studenten/internal/service"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document — корень YAML-файла.
type Document struct {
	Students []Student `yaml:"students"`
}

// Student — запись студента в YAML.
type Student struct {
	MatriculationNumber int         `yaml:"matriculation_number"`
	Program             *string     `yaml:"program"`
	Balance             string      `yaml:"balance"`
	Birthday            *string     `yaml:"birthday"`
	Name                Name        `yaml:"name"`
	Photos              []Photo     `yaml:"photos"`
	File                *Attachment `yaml:"file"`
}

type Name struct {
	FirstName string  `yaml:"first_name"`
	LastName  *string `yaml:"last_name"`
}

type Photo struct {
	Caption     string `yaml:"caption"`
	ContentType string `yaml:"content_type"`
}

// Attachment — файл студента; содержимое в base64.
type Attachment struct {
	Filename string `yaml:"filename"`
	Mimetype string `yaml:"mimetype"`
	Data     string `yaml:"data"`
}

// Writer — операции записи, нужные для заполнения.
type Writer interface {
	Create(ctx context.Context, s *model.Student) (int64, error)
	SaveFile(ctx context.Context, f *model.StudentFile) (bool, error)
}

// Load читает документ из файла.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse читает документ из потока; неизвестные поля — ошибка.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &doc, nil
}

// Populate создаёт студентов документа. Уже существующие матрикулярные номера пропускаются,
// поэтому повторный запуск ничего не дублирует. Возвращает число созданных студентов.
func Populate(ctx context.Context, w Writer, doc *Document, log *zap.SugaredLogger) (int, error) {
	created := 0
	for i, s := range doc.Students {
		in, err := s.toDTO()
		if err != nil {
			return created, fmt.Errorf("seed student #%d: %w", i, err)
		}
		if err := dto.Validate(in); err != nil {
			return created, fmt.Errorf("seed student #%d: %w", i, err)
		}

		id, err := w.Create(ctx, in.ToModel())
		if errors.Is(err, service.ErrDuplicateKey) {
			log.Infow("seed: student exists, skipped", "matriculationNumber", s.MatriculationNumber)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed student #%d: %w", i, err)
		}
		created++

		if s.File == nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(s.File.Data)
		if err != nil {
			return created, fmt.Errorf("seed file of student #%d: %w", i, err)
		}
		if _, err := w.SaveFile(ctx, &model.StudentFile{
			Filename:  s.File.Filename,
			Mimetype:  s.File.Mimetype,
			Data:      data,
			StudentID: id,
		}); err != nil {
			return created, err
		}
	}
	log.Infow("seed: done", "created", created, "total", len(doc.Students))
	return created, nil
}

func (s Student) toDTO() (dto.StudentDTO, error) {
	balance := decimal.Zero
	if s.Balance != "" {
		b, err := decimal.NewFromString(s.Balance)
		if err != nil {
			return dto.StudentDTO{}, fmt.Errorf("balance %q: %w", s.Balance, err)
		}
		balance = b
	}
	in := dto.StudentDTO{
		StudentUpdateDTO: dto.StudentUpdateDTO{
			MatriculationNumber: s.MatriculationNumber,
			Program:             s.Program,
			Balance:             balance,
			Birthday:            s.Birthday,
		},
		Name: &dto.NameDTO{FirstName: s.Name.FirstName, LastName: s.Name.LastName},
	}
	for _, p := range s.Photos {
		in.Photos = append(in.Photos, dto.PhotoDTO{Caption: p.Caption, ContentType: p.ContentType})
	}
	return in, nil
}
