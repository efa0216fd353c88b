package handlers_test

import (
	"Studenten/internal/auth"
	"Studenten/internal/config"
	"Studenten/internal/handlers"
	"Studenten/internal/model"
	"Studenten/internal/search"
	"Studenten/internal/service"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockReader struct{ mock.Mock }

func (m *hMockReader) FindByID(ctx context.Context, id int64, withPhotos bool) (*model.Student, error) {
	args := m.Called(ctx, id, withPhotos)
	if v, ok := args.Get(0).(*model.Student); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockReader) Find(ctx context.Context, c search.Criteria, p search.Pageable) (search.Slice[model.Student], error) {
	args := m.Called(ctx, c, p)
	return args.Get(0).(search.Slice[model.Student]), args.Error(1)
}
func (m *hMockReader) FindFileByOwnerID(ctx context.Context, id int64) (*model.StudentFile, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.StudentFile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ service.Reader = (*hMockReader)(nil)

type hMockWriter struct{ mock.Mock }

func (m *hMockWriter) Create(ctx context.Context, s *model.Student) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockWriter) Update(ctx context.Context, p service.UpdateParams) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockWriter) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ service.Writer = (*hMockWriter)(nil)

func newHandlersTestRouter(t *testing.T) (http.Handler, *config.Config, *hMockReader, *hMockWriter) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	rd := &hMockReader{}
	wr := &hMockWriter{}

	h := handlers.NewHandler(rd, wr, logger, cfg)
	return h.Router, cfg, rd, wr
}

func addAuth(t *testing.T, req *http.Request, secret string, roles ...string) {
	t.Helper()
	tok, err := auth.NewToken(secret, "tester", roles, time.Minute)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
}
