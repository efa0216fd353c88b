package repo

import (
	"Studenten/internal/model"
	"Studenten/internal/search"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Schema задаёт имена таблицы студентов и связей, с которыми работает построитель запросов.
// NameRelation одновременно является алиасом присоединённой таблицы имён.
type Schema struct {
	StudentTable   string
	NameRelation   string
	PhotosRelation string
}

// DefaultSchema соответствует моделям пакета model.
func DefaultSchema() Schema {
	return Schema{
		StudentTable:   model.Student{}.TableName(),
		NameRelation:   "Name",
		PhotosRelation: "Photos",
	}
}

// equalityColumns — объявленные атрибуты студента, фильтруемые по точному равенству.
var equalityColumns = map[string]string{
	search.KeyProgram:  "program",
	search.KeyBalance:  "balance",
	search.KeyBirthday: "birthday",
}

// BuildByID строит запрос одного студента с именем и, по запросу, с фотографиями.
func BuildByID(db *gorm.DB, s Schema, id int64, withPhotos bool) *gorm.DB {
	q := db.Model(&model.Student{}).InnerJoins(s.NameRelation)
	if withPhotos {
		q = q.Preload(s.PhotosRelation)
	}
	return q.Where(clause.Eq{Column: s.column("id"), Value: id})
}

// Build строит (но не выполняет) запрос поиска по критериям.
// Все условия объединяются через AND. Pageable с Size == 0 оставляет запрос без LIMIT/OFFSET,
// чтобы его можно было использовать для подсчёта или дальнейшей композиции.
func Build(db *gorm.DB, s Schema, c search.Criteria, p search.Pageable) *gorm.DB {
	q := db.Model(&model.Student{}).InnerJoins(s.NameRelation)

	for key, value := range c.Compact() {
		switch key {
		case search.KeyLastName, search.KeyName:
			pattern := "%" + escapeLike(strings.ToLower(value)) + "%"
			q = q.Where(`LOWER(?) LIKE ? ESCAPE '\'`, clause.Column{Table: s.NameRelation, Name: "last_name"}, pattern)
		case search.KeyMatriculationNumber:
			if n, err := strconv.Atoi(value); err == nil {
				q = q.Where(clause.Gte{Column: s.column("matriculation_number"), Value: n})
			}
		default:
			col, ok := equalityColumns[key]
			if !ok {
				continue
			}
			v, ok := equalityValue(key, value)
			if !ok {
				continue
			}
			q = q.Where(clause.Eq{Column: s.column(col), Value: v})
		}
	}

	if !p.Paged() {
		return q
	}
	return q.Limit(p.Size).Offset(p.Offset())
}

// equalityValue приводит значение фильтра к типу столбца; неразбираемые значения пропускаются.
func equalityValue(key, value string) (any, bool) {
	switch key {
	case search.KeyBalance:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, false
		}
		return d, true
	case search.KeyBirthday:
		d, err := model.ParseDate(value)
		if err != nil {
			return nil, false
		}
		return d, true
	}
	return value, true
}

func (s Schema) column(name string) clause.Column {
	return clause.Column{Table: s.StudentTable, Name: name}
}

// likeEscaper экранирует метасимволы LIKE, чтобы значение искалось как подстрока.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(v string) string { return likeEscaper.Replace(v) }
