package handlers

import (
	"Studenten/internal/dto"
	"Studenten/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// StudentWriteHandler обрабатывает создание, изменение и удаление студентов.
type StudentWriteHandler struct {
	Writer service.Writer
	Logger *zap.SugaredLogger
}

// NewStudentWriteHandler создаёт хендлер записи
func NewStudentWriteHandler(writer service.Writer, logger *zap.SugaredLogger) *StudentWriteHandler {
	return &StudentWriteHandler{Writer: writer, Logger: logger}
}

// Create POST /rest: 201 и Location нового студента.
func (h *StudentWriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dto.StudentDTO
	if !h.decode(w, r, &in) {
		return
	}

	id, err := h.Writer.Create(r.Context(), in.ToModel())
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	location := baseURI(r) + "/" + strconv.FormatInt(id, 10)
	h.Logger.Debugw("student created", "location", location)
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// Update PUT /rest/{id}: требует If-Match, отвечает 204 и новым ETag.
func (h *StudentWriteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	version := r.Header.Get("If-Match")
	if version == "" {
		writeError(w, http.StatusPreconditionRequired, "header If-Match is missing")
		return
	}

	var in dto.StudentUpdateDTO
	if !h.decode(w, r, &in) {
		return
	}

	newVersion, err := h.Writer.Update(r.Context(), service.UpdateParams{
		ID:      id,
		Student: in.ToModel(),
		Version: version,
	})
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.Header().Set("ETag", service.FormatVersion(newVersion))
	w.WriteHeader(http.StatusNoContent)
}

// Delete DELETE /rest/{id}: 204.
func (h *StudentWriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	deleted, err := h.Writer.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	h.Logger.Debugw("student delete", "id", id, "deleted", deleted)
	w.WriteHeader(http.StatusNoContent)
}

// decode читает JSON-тело и валидирует его; при ошибке отвечает 400.
func (h *StudentWriteHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.Warnw("bad json", "error", err)
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dto.Validate(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.Logger.Warnw("validation failed", "errors", verrs.Error())
			writeError(w, http.StatusBadRequest, verrs.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
