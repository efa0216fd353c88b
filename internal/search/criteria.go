// Package search содержит типы поиска студентов: критерии, параметры страницы и результаты.
package search

import (
	"sort"
	"strings"
)

// Ключи критериев поиска.
const (
	KeyLastName            = "last_name"
	KeyName                = "name" // синоним last_name
	KeyMatriculationNumber = "matriculation_number"
	KeyProgram             = "program"
	KeyBalance             = "balance"
	KeyBirthday            = "birthday"
)

// Criteria — разреженный набор фильтров: ключ поля -> значение.
// Пустые значения трактуются как отсутствующие.
type Criteria map[string]string

// Compact возвращает копию без пустых значений; nil, если фильтров не осталось.
func (c Criteria) Compact() Criteria {
	var out Criteria
	for k, v := range c {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if out == nil {
			out = Criteria{}
		}
		out[k] = v
	}
	return out
}

// Empty сообщает, что ни один фильтр не задан.
func (c Criteria) Empty() bool {
	return len(c.Compact()) == 0
}

// String формирует стабильное представление для сообщений об ошибках и логов.
func (c Criteria) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+c[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
