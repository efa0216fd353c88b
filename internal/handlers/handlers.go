package handlers

import (
	"Studenten/internal/auth"
	"Studenten/internal/config"
	"Studenten/internal/gql"
	"Studenten/internal/middleware"
	"Studenten/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RESTPath — базовый путь REST API.
const RESTPath = "/rest"

// GraphQLPath — путь GraphQL API.
const GraphQLPath = "/graphql"

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	reader service.Reader,
	writer service.Writer,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	getHandler := NewStudentGetHandler(reader, logger)
	writeHandler := NewStudentWriteHandler(writer, logger)

	// REST: чтение открыто, запись по ролям
	r.Route(RESTPath, func(r chi.Router) {
		r.Get("/", getHandler.Find)
		r.Get("/{id}", getHandler.GetByID)
		r.Get("/file/{id}", getHandler.File)

		r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleUser)).Post("/", writeHandler.Create)
		r.With(middleware.RequireRoles(auth.RoleAdmin, auth.RoleUser)).Put("/{id}", writeHandler.Update)
		r.With(middleware.RequireRoles(auth.RoleAdmin)).Delete("/{id}", writeHandler.Delete)
	})

	// GraphQL: авторизация проверяется в резолверах
	gqlHandler, err := gql.NewHandler(reader, writer, logger)
	if err != nil {
		logger.Fatalw("graphql schema", "error", err)
	}
	r.Handle(GraphQLPath, gqlHandler)

	return &Handler{Router: r}
}
