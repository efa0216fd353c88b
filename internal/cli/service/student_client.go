package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"Studenten/internal/cli/api"
	"Studenten/internal/cli/repo"
)

// ErrNoVersion is returned by Update when neither an explicit version nor a cached ETag is available.
var ErrNoVersion = errors.New("no version known: run get first or pass the version explicitly")

// Fetched is the result of a GET for a single student.
type Fetched struct {
	ETag      string
	Body      []byte
	FromCache bool
}

// StudentClient combines the REST API with the local ETag cache.
type StudentClient struct {
	api   *api.Client
	cache repo.ETagCache
}

// NewStudentClient creates a client. cache may be nil, in which case nothing is cached.
func NewStudentClient(c *api.Client, cache repo.ETagCache) *StudentClient {
	return &StudentClient{api: c, cache: cache}
}

// Get fetches a student. A cached ETag is sent as If-None-Match and a 304 answer is served from the cache.
func (s *StudentClient) Get(ctx context.Context, id int64, withPhotos bool) (*Fetched, error) {
	var cached *repo.CachedStudent
	if s.cache != nil && !withPhotos {
		var err error
		if cached, err = s.cache.Get(s.api.BaseURL, id); err != nil {
			return nil, fmt.Errorf("read cache: %w", err)
		}
	}

	h := http.Header{}
	if cached != nil {
		h.Set("If-None-Match", cached.ETag)
	}
	var q url.Values
	if withPhotos {
		q = url.Values{"photos": {"true"}}
	}
	resp, body, err := s.api.Do(ctx, http.MethodGet, s.api.Endpoint(q, strconv.FormatInt(id, 10)), nil, h)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusNotModified:
		if cached == nil {
			return nil, api.AsStatusError(resp, body)
		}
		return &Fetched{ETag: cached.ETag, Body: cached.Body, FromCache: true}, nil
	case http.StatusOK:
		etag := resp.Header.Get("ETag")
		if s.cache != nil && etag != "" && !withPhotos {
			if err := s.cache.Put(s.api.BaseURL, id, etag, body); err != nil {
				return nil, fmt.Errorf("write cache: %w", err)
			}
		}
		return &Fetched{ETag: etag, Body: body}, nil
	case http.StatusNotFound:
		s.forget(id)
		return nil, api.AsStatusError(resp, body)
	default:
		return nil, api.AsStatusError(resp, body)
	}
}

// Find searches students by criteria; page and size travel as ordinary query keys.
func (s *StudentClient) Find(ctx context.Context, criteria map[string]string) ([]byte, error) {
	q := url.Values{}
	for k, v := range criteria {
		q.Set(k, v)
	}
	resp, body, err := s.api.Do(ctx, http.MethodGet, s.api.Endpoint(q), nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, api.AsStatusError(resp, body)
	}
	return body, nil
}

// Create posts a student document and returns the Location of the new resource.
func (s *StudentClient) Create(ctx context.Context, doc json.RawMessage) (string, error) {
	resp, body, err := s.api.Do(ctx, http.MethodPost, s.api.Endpoint(nil), doc, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", api.AsStatusError(resp, body)
	}
	return resp.Header.Get("Location"), nil
}

// Update sends a conditional PUT. An empty version falls back to the cached ETag.
// It returns the new ETag reported by the server.
func (s *StudentClient) Update(ctx context.Context, id int64, doc json.RawMessage, version string) (string, error) {
	etag := QuoteVersion(version)
	if etag == "" && s.cache != nil {
		cached, err := s.cache.Get(s.api.BaseURL, id)
		if err != nil {
			return "", fmt.Errorf("read cache: %w", err)
		}
		if cached != nil {
			etag = cached.ETag
		}
	}
	if etag == "" {
		return "", ErrNoVersion
	}

	h := http.Header{}
	h.Set("If-Match", etag)
	resp, body, err := s.api.Do(ctx, http.MethodPut, s.api.Endpoint(nil, strconv.FormatInt(id, 10)), doc, h)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusNoContent {
		return "", api.AsStatusError(resp, body)
	}
	// тело в кэше устарело; следующий get перечитает его
	s.forget(id)
	return resp.Header.Get("ETag"), nil
}

// Delete removes a student on the server and drops it from the cache.
func (s *StudentClient) Delete(ctx context.Context, id int64) error {
	resp, body, err := s.api.Do(ctx, http.MethodDelete, s.api.Endpoint(nil, strconv.FormatInt(id, 10)), nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return api.AsStatusError(resp, body)
	}
	s.forget(id)
	return nil
}

// File downloads the binary file of a student and returns it with the server-side file name.
func (s *StudentClient) File(ctx context.Context, id int64) ([]byte, string, error) {
	h := http.Header{}
	h.Set("Accept", "*/*")
	resp, body, err := s.api.Do(ctx, http.MethodGet, s.api.Endpoint(nil, "file", strconv.FormatInt(id, 10)), nil, h)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", api.AsStatusError(resp, body)
	}
	var filename string
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return body, filename, nil
}

func (s *StudentClient) forget(id int64) {
	if s.cache != nil {
		_ = s.cache.Delete(s.api.BaseURL, id)
	}
}

// QuoteVersion turns a bare version number into an ETag; quoted input is returned as is.
func QuoteVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, `"`) {
		return v
	}
	return `"` + v + `"`
}
