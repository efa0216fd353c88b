package gql

import (
	"Studenten/internal/service"
	"errors"

	"go.uber.org/zap"
)

// Коды ошибок в extensions.code.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// codedError — ошибка резолвера с кодом в extensions.
type codedError struct {
	msg  string
	code string
}

func (e *codedError) Error() string { return e.msg }

// Extensions реализует gqlerrors.ExtendedError.
func (e *codedError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

func newError(code, msg string) error {
	return &codedError{msg: msg, code: code}
}

// toGraphQLError переводит ошибку сервиса в ошибку с кодом.
func toGraphQLError(logger *zap.SugaredLogger, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return newError(CodeNotFound, "not found")
	case errors.Is(err, service.ErrDuplicateKey),
		errors.Is(err, service.ErrInvalidVersion),
		errors.Is(err, service.ErrOutdatedVersion):
		return newError(CodeBadUserInput, err.Error())
	}
	logger.Errorw("graphql resolver failed", "error", err)
	return newError(CodeInternal, "internal server error")
}
