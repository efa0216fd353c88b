package repo

// TokenStore описывает абстракцию хранилища bearer-токена на клиенте.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
}

// CachedStudent — закэшированный ответ GET /rest/{id} вместе с его ETag.
type CachedStudent struct {
	ETag      string
	Body      []byte
	UpdatedAt int64
}

// ETagCache хранит последние ETag по серверу и id студента.
type ETagCache interface {
	Get(baseURL string, id int64) (*CachedStudent, error)
	Put(baseURL string, id int64, etag string, body []byte) error
	Delete(baseURL string, id int64) error
}
