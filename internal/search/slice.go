package search

// Slice — часть результата вместе с общим количеством подходящих строк.
type Slice[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"total_elements"`
}

// PageInfo — метаданные страницы в ответе REST.
type PageInfo struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int64 `json:"total_pages"`
}

// Page — ответ REST для поиска.
type Page[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}

// NewPage строит страницу из среза и запрошенных параметров.
func NewPage[T any](s Slice[T], p Pageable) Page[T] {
	info := PageInfo{Size: p.Size, Number: p.Number, TotalElements: s.TotalElements, TotalPages: 1}
	if p.Size > 0 {
		info.TotalPages = (s.TotalElements + int64(p.Size) - 1) / int64(p.Size)
	}
	content := s.Content
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Page: info}
}
