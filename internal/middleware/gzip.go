package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// compressLevel — уровень gzip/deflate для ответов.
const compressLevel = 5

// compressibleTypes — типы ответов, которые сжимаются.
var compressibleTypes = []string{
	"application/json",
	"application/graphql-response+json",
	"text/plain",
	"text/html",
}

// WithGzip сжимает ответы, если клиент прислал Accept-Encoding: gzip.
func WithGzip(next http.Handler) http.Handler {
	return chimw.Compress(compressLevel, compressibleTypes...)(next)
}
