package handlers_test

import (
	"Studenten/internal/auth"
	"Studenten/internal/model"
	"Studenten/internal/service"
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const validBody = `{"matriculation_number":12345,"program":"WI","balance":1.00,"birthday":"2001-02-03",
	"name":{"first_name":"Eva","last_name":"Anderson"},"photos":[{"caption":"portrait","content_type":"image/png"}]}`

const updateBody = `{"matriculation_number":12345,"program":"WI","balance":"2.00"}`

func TestCreate(t *testing.T) {
	t.Run("anonymous is 401", func(t *testing.T) {
		router, _, _, _ := newHandlersTestRouter(t)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/rest", bytes.NewBufferString(validBody)))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("created with location", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		wr.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Student) bool {
			return s.MatriculationNumber == 12345 && s.Name.FirstName == "Eva" && len(s.Photos) == 1
		})).Return(int64(42), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/rest", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		addAuth(t, req, cfg.AuthSecret, auth.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "http://example.com/rest/42", rr.Header().Get("Location"))
	})

	t.Run("invalid body is 400", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		for _, body := range []string{
			`{"matriculation_number":1,"program":"XX","balance":1,"name":{"first_name":"Eva"}}`,
			`{"matriculation_number":1,"balance":-1,"name":{"first_name":"Eva"}}`,
			`{"matriculation_number":1,"balance":1}`,
			`not json`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/rest", bytes.NewBufferString(body))
			addAuth(t, req, cfg.AuthSecret, auth.RoleAdmin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		}
		wr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate is 422", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		wr.On("Create", mock.Anything, mock.Anything).Return(int64(0), &service.DuplicateKeyError{MatriculationNumber: 12345}).Once()

		req := httptest.NewRequest(http.MethodPost, "/rest", bytes.NewBufferString(validBody))
		addAuth(t, req, cfg.AuthSecret, auth.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "12345")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("missing If-Match is 428", func(t *testing.T) {
		router, cfg, _, _ := newHandlersTestRouter(t)
		req := httptest.NewRequest(http.MethodPut, "/rest/1", bytes.NewBufferString(updateBody))
		addAuth(t, req, cfg.AuthSecret, auth.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusPreconditionRequired, rr.Code)
	})

	t.Run("ok returns new etag", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		wr.On("Update", mock.Anything, mock.MatchedBy(func(p service.UpdateParams) bool {
			return p.ID == 1 && p.Version == `"0"` && p.Student.Balance.String() == "2"
		})).Return(int64(1), nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/rest/1", bytes.NewBufferString(updateBody))
		req.Header.Set("If-Match", `"0"`)
		addAuth(t, req, cfg.AuthSecret, auth.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, `"1"`, rr.Header().Get("ETag"))
	})

	t.Run("version errors are 412", func(t *testing.T) {
		for _, svcErr := range []error{
			&service.InvalidVersionError{Version: "abc"},
			&service.OutdatedVersionError{Version: 0},
		} {
			router, cfg, _, wr := newHandlersTestRouter(t)
			wr.On("Update", mock.Anything, mock.Anything).Return(int64(0), svcErr).Once()

			req := httptest.NewRequest(http.MethodPut, "/rest/1", bytes.NewBufferString(updateBody))
			req.Header.Set("If-Match", "abc")
			addAuth(t, req, cfg.AuthSecret, auth.RoleAdmin)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusPreconditionFailed, rr.Code)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("user role is 403", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		req := httptest.NewRequest(http.MethodDelete, "/rest/1", nil)
		addAuth(t, req, cfg.AuthSecret, auth.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		wr.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin deletes", func(t *testing.T) {
		router, cfg, _, wr := newHandlersTestRouter(t)
		wr.On("Delete", mock.Anything, int64(1)).Return(true, nil).Once()
		wr.On("Delete", mock.Anything, int64(2)).Return(false, &service.NotFoundError{}).Once()

		req := httptest.NewRequest(http.MethodDelete, "/rest/1", nil)
		addAuth(t, req, cfg.AuthSecret, auth.RoleAdmin)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		req = httptest.NewRequest(http.MethodDelete, "/rest/2", nil)
		addAuth(t, req, cfg.AuthSecret, auth.RoleAdmin)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGraphQLMounted(t *testing.T) {
	router, _, rd, _ := newHandlersTestRouter(t)
	rd.On("FindByID", mock.Anything, int64(1), false).Return(&model.Student{ID: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(`{"query":"{ student(id: \"1\") { id } }"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id": "1"`)
}
