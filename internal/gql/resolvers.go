package gql

import (
	"Studenten/internal/auth"
	"Studenten/internal/dto"
	"Studenten/internal/middleware"
	"Studenten/internal/model"
	"Studenten/internal/search"
	"Studenten/internal/service"
	"context"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// criteriaKeys сопоставляет поля Criteria ключам поиска.
var criteriaKeys = map[string]string{
	"lastName":            search.KeyLastName,
	"matriculationNumber": search.KeyMatriculationNumber,
	"program":             search.KeyProgram,
	"balance":             search.KeyBalance,
	"birthday":            search.KeyBirthday,
}

type resolver struct {
	reader service.Reader
	writer service.Writer
	log    *zap.SugaredLogger
}

func (r *resolver) student(p graphql.ResolveParams) (any, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	withPhotos, _ := p.Args["photos"].(bool)

	st, err := r.reader.FindByID(p.Context, id, withPhotos)
	if err != nil {
		return nil, toGraphQLError(r.log, err)
	}
	return studentView(st), nil
}

func (r *resolver) students(p graphql.ResolveParams) (any, error) {
	criteria := search.Criteria{}
	if in, ok := p.Args["criteria"].(map[string]any); ok {
		for field, key := range criteriaKeys {
			if v, ok := in[field].(string); ok {
				criteria[key] = v
			}
		}
	}
	pageable := search.NewPageable(intArg(p.Args["page"]), intArg(p.Args["size"]))

	slice, err := r.reader.Find(p.Context, criteria, pageable)
	if err != nil {
		return nil, toGraphQLError(r.log, err)
	}
	out := make([]any, 0, len(slice.Content))
	for i := range slice.Content {
		out = append(out, studentView(&slice.Content[i]))
	}
	return out, nil
}

func (r *resolver) create(p graphql.ResolveParams) (any, error) {
	if err := requireRoles(p.Context, auth.RoleAdmin, auth.RoleUser); err != nil {
		return nil, err
	}
	in, _ := p.Args["input"].(map[string]any)
	d := dto.StudentDTO{StudentUpdateDTO: updateDTOFromInput(in)}
	if name, ok := in["name"].(map[string]any); ok {
		d.Name = &dto.NameDTO{FirstName: stringField(name, "firstName"), LastName: optionalString(name, "lastName")}
	}
	if photos, ok := in["photos"].([]any); ok {
		for _, raw := range photos {
			if ph, ok := raw.(map[string]any); ok {
				d.Photos = append(d.Photos, dto.PhotoDTO{
					Caption:     stringField(ph, "caption"),
					ContentType: stringField(ph, "contentType"),
				})
			}
		}
	}
	if err := dto.Validate(d); err != nil {
		return nil, newError(CodeBadUserInput, err.Error())
	}

	id, err := r.writer.Create(p.Context, d.ToModel())
	if err != nil {
		return nil, toGraphQLError(r.log, err)
	}
	return map[string]any{"id": strconv.FormatInt(id, 10)}, nil
}

func (r *resolver) update(p graphql.ResolveParams) (any, error) {
	if err := requireRoles(p.Context, auth.RoleAdmin, auth.RoleUser); err != nil {
		return nil, err
	}
	in, _ := p.Args["input"].(map[string]any)
	id, err := parseID(in["id"])
	if err != nil {
		return nil, err
	}
	version, _ := in["version"].(int)
	d := updateDTOFromInput(in)
	if err := dto.Validate(d); err != nil {
		return nil, newError(CodeBadUserInput, err.Error())
	}

	newVersion, err := r.writer.Update(p.Context, service.UpdateParams{
		ID:      id,
		Student: d.ToModel(),
		Version: service.FormatVersion(int64(version)),
	})
	if err != nil {
		return nil, toGraphQLError(r.log, err)
	}
	return map[string]any{"version": int(newVersion)}, nil
}

func (r *resolver) delete(p graphql.ResolveParams) (any, error) {
	if err := requireRoles(p.Context, auth.RoleAdmin); err != nil {
		return nil, err
	}
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	deleted, err := r.writer.Delete(p.Context, id)
	if err != nil {
		return nil, toGraphQLError(r.log, err)
	}
	return deleted, nil
}

// requireRoles — аноним получает UNAUTHENTICATED, субъект без роли — FORBIDDEN.
func requireRoles(ctx context.Context, roles ...string) error {
	claims, ok := middleware.GetClaimsFromContext(ctx)
	if !ok {
		return newError(CodeUnauthenticated, "unauthenticated")
	}
	if !claims.HasAnyRole(roles...) {
		return newError(CodeForbidden, "forbidden")
	}
	return nil
}

func parseID(v any) (int64, error) {
	s, _ := v.(string)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, newError(CodeBadUserInput, "invalid id "+strconv.Quote(s))
	}
	return id, nil
}

func intArg(v any) string {
	if n, ok := v.(int); ok {
		return strconv.Itoa(n)
	}
	return ""
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func optionalString(m map[string]any, key string) *string {
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func updateDTOFromInput(in map[string]any) dto.StudentUpdateDTO {
	d := dto.StudentUpdateDTO{
		Program:  optionalString(in, "program"),
		Birthday: optionalString(in, "birthday"),
	}
	if n, ok := in["matriculationNumber"].(int); ok {
		d.MatriculationNumber = n
	}
	if b, ok := in["balance"].(decimal.Decimal); ok {
		d.Balance = b
	}
	return d
}

// studentView — представление студента для GraphQL с именами полей схемы.
func studentView(s *model.Student) map[string]any {
	v := map[string]any{
		"id":                  strconv.FormatInt(s.ID, 10),
		"version":             int(s.Version),
		"matriculationNumber": s.MatriculationNumber,
		"balance":             s.Balance,
		"program":             nil,
		"birthday":            nil,
		"name":                nil,
		"createdAt":           s.CreatedAt.Format(time.RFC3339),
		"updatedAt":           s.UpdatedAt.Format(time.RFC3339),
	}
	if s.Program != nil {
		v["program"] = string(*s.Program)
	}
	if s.Birthday != nil {
		v["birthday"] = s.Birthday.String()
	}
	if s.Name != nil {
		name := map[string]any{"firstName": s.Name.FirstName, "lastName": nil}
		if s.Name.LastName != nil {
			name["lastName"] = *s.Name.LastName
		}
		v["name"] = name
	}
	photos := make([]any, 0, len(s.Photos))
	for _, ph := range s.Photos {
		photos = append(photos, map[string]any{"caption": ph.Caption, "contentType": ph.ContentType})
	}
	v["photos"] = photos
	return v
}
