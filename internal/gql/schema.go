// Package gql — GraphQL-адаптер сервисов студентов.
package gql

import (
	"Studenten/internal/service"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"go.uber.org/zap"
)

var nameType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Name",
	Fields: graphql.Fields{
		"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.Field{Type: graphql.String},
	},
})

var photoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Photo",
	Fields: graphql.Fields{
		"caption":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"contentType": &graphql.Field{Type: graphql.String},
	},
})

var studentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Student",
	Fields: graphql.Fields{
		"id":                  &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"version":             &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"matriculationNumber": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"program":             &graphql.Field{Type: graphql.String},
		"balance":             &graphql.Field{Type: graphql.NewNonNull(decimalScalar)},
		"birthday":            &graphql.Field{Type: graphql.String},
		"name":                &graphql.Field{Type: nameType},
		"photos":              &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(photoType))},
		"createdAt":           &graphql.Field{Type: graphql.String},
		"updatedAt":           &graphql.Field{Type: graphql.String},
	},
})

var criteriaInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "Criteria",
	Fields: graphql.InputObjectConfigFieldMap{
		"lastName":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		"matriculationNumber": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"program":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthday":            &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var nameInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "NameInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var photoInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PhotoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"caption":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"contentType": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var studentInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "StudentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"matriculationNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"program":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalScalar)},
		"birthday":            &graphql.InputObjectFieldConfig{Type: graphql.String},
		"name":                &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(nameInput)},
		"photos":              &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(photoInput))},
	},
})

var studentUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "StudentUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":                  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"version":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"matriculationNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"program":             &graphql.InputObjectFieldConfig{Type: graphql.String},
		"balance":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalScalar)},
		"birthday":            &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreatePayload",
	Fields: graphql.Fields{
		"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
	},
})

var updatePayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdatePayload",
	Fields: graphql.Fields{
		"version": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

// NewSchema собирает схему: запросы открыты, мутации требуют ролей.
func NewSchema(reader service.Reader, writer service.Writer, logger *zap.SugaredLogger) (graphql.Schema, error) {
	r := &resolver{reader: reader, writer: writer, log: logger}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"student": &graphql.Field{
				Type: studentType,
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"photos": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: r.student,
			},
			"students": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(studentType))),
				Args: graphql.FieldConfigArgument{
					"criteria": &graphql.ArgumentConfig{Type: criteriaInput},
					"page":     &graphql.ArgumentConfig{Type: graphql.Int},
					"size":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.students,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"create": &graphql.Field{
				Type: createPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(studentInput)},
				},
				Resolve: r.create,
			},
			"update": &graphql.Field{
				Type: updatePayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(studentUpdateInput)},
				},
				Resolve: r.update,
			},
			"delete": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.delete,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// NewHandler возвращает HTTP-обработчик GraphQL (POST и GET).
func NewHandler(reader service.Reader, writer service.Writer, logger *zap.SugaredLogger) (http.Handler, error) {
	schema, err := NewSchema(reader, writer, logger)
	if err != nil {
		return nil, err
	}
	return handler.New(&handler.Config{Schema: &schema, Pretty: true}), nil
}
