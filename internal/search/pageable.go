package search

import "strconv"

const (
	// DefaultPageSize используется, если размер страницы не задан или некорректен.
	DefaultPageSize = 5
	// MaxPageSize — верхняя граница размера страницы из запроса.
	MaxPageSize = 100
	// DefaultPageNumber — номер первой страницы (нумерация с нуля).
	DefaultPageNumber = 0
)

// Pageable описывает запрошенную страницу. Number нумеруется с нуля.
// Size == 0 означает "без пагинации".
type Pageable struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// DefaultPageable — первая страница размера по умолчанию.
func DefaultPageable() Pageable {
	return Pageable{Number: DefaultPageNumber, Size: DefaultPageSize}
}

// Unpaged возвращает значение-маркер без пагинации.
func Unpaged() Pageable {
	return Pageable{}
}

// Paged сообщает, нужно ли применять LIMIT/OFFSET.
func (p Pageable) Paged() bool { return p.Size > 0 }

// Offset — количество пропускаемых строк.
func (p Pageable) Offset() int { return p.Number * p.Size }

// NewPageable разбирает значения из запроса. Номер страницы в запросе нумеруется с единицы;
// нечисловые или выходящие за границы значения заменяются значениями по умолчанию.
func NewPageable(page, size string) Pageable {
	p := DefaultPageable()
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = n - 1
	}
	if s, err := strconv.Atoi(size); err == nil && s > 0 && s <= MaxPageSize {
		p.Size = s
	}
	return p
}
