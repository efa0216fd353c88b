package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/shopspring/decimal"
)

// Decimal передаётся строкой, чтобы не терять точность.
var decimalScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Decimal",
	Description: "Exact base-10 decimal, serialized as a string",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case decimal.Decimal:
			return v.String()
		case *decimal.Decimal:
			if v == nil {
				return nil
			}
			return v.String()
		}
		return nil
	},
	ParseValue: func(value any) any {
		switch v := value.(type) {
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		}
		return nil
	},
	ParseLiteral: func(value ast.Value) any {
		switch v := value.(type) {
		case *ast.StringValue:
			if d, err := decimal.NewFromString(v.Value); err == nil {
				return d
			}
		case *ast.IntValue:
			if d, err := decimal.NewFromString(v.Value); err == nil {
				return d
			}
		case *ast.FloatValue:
			if d, err := decimal.NewFromString(v.Value); err == nil {
				return d
			}
		}
		return nil
	},
})
