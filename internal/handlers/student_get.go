package handlers

import (
	"Studenten/internal/search"
	"Studenten/internal/service"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Параметры пагинации в query string; остальные параметры — критерии поиска.
const (
	queryPage   = "page"
	querySize   = "size"
	queryPhotos = "photos"
)

// StudentGetHandler обрабатывает чтение студентов.
type StudentGetHandler struct {
	Reader service.Reader
	Logger *zap.SugaredLogger
}

// NewStudentGetHandler создаёт хендлер чтения
func NewStudentGetHandler(reader service.Reader, logger *zap.SugaredLogger) *StudentGetHandler {
	return &StudentGetHandler{Reader: reader, Logger: logger}
}

// GetByID GET /rest/{id}: студент с ETag; совпадающий If-None-Match даёт 304.
func (h *StudentGetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		w.WriteHeader(http.StatusNotAcceptable)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	withPhotos, _ := strconv.ParseBool(r.URL.Query().Get(queryPhotos))

	st, err := h.Reader.FindByID(r.Context(), id, withPhotos)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	etag := service.FormatVersion(st.Version)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		h.Logger.Debugw("not modified", "id", id, "etag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Find GET /rest?...: поиск по критериям с пагинацией.
func (h *StudentGetHandler) Find(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		w.WriteHeader(http.StatusNotAcceptable)
		return
	}
	q := r.URL.Query()
	pageable := search.NewPageable(q.Get(queryPage), q.Get(querySize))

	criteria := search.Criteria{}
	for key := range q {
		if key == queryPage || key == querySize {
			continue
		}
		criteria[key] = q.Get(key)
	}

	slice, err := h.Reader.Find(r.Context(), criteria, pageable)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, search.NewPage(slice, pageable))
}

// File GET /rest/file/{id}: бинарный файл студента как вложение.
func (h *StudentGetHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	f, err := h.Reader.FindFileByOwnerID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	if f == nil || f.Data == nil {
		writeError(w, http.StatusNotFound, "no data found")
		return
	}

	ct := f.Mimetype
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}
