package handlers

import (
	"Studenten/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// errorResponse — тело ответа об ошибке.
type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Status: status, Message: msg})
}

// writeServiceError переводит ошибку сервиса в HTTP-статус.
// NotFound отдаётся без подробностей: клиент не различает отсутствующий id и отклонённый фильтр.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		logger.Debugw("not found", "error", err)
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	case errors.Is(err, service.ErrDuplicateKey):
		logger.Warnw("duplicate key", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidVersion), errors.Is(err, service.ErrOutdatedVersion):
		logger.Warnw("version rejected", "error", err)
		writeError(w, http.StatusPreconditionFailed, err.Error())
	default:
		logger.Errorw("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// pathID разбирает {id} из пути; нечисловой id трактуется как отсутствующий.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// acceptsJSON — клиент принимает JSON или HTML (или не указал Accept).
func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mt := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch {
		case mt == "*/*", mt == "application/*", mt == "text/*":
			return true
		case strings.HasSuffix(mt, "json"), mt == "text/html":
			return true
		}
	}
	return false
}

// baseURI — схема, хост и базовый путь REST для заголовка Location.
func baseURI(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + RESTPath
}
