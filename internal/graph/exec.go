package graph

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"crm-be/internal/logger"

	"github.com/99designs/gqlgen/graphql"
	"github.com/go-viper/mapstructure/v2"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"
)

//go:embed schema.graphqls
var schemaSource string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})

type ResolverRoot interface {
	Mutation() MutationResolver
	Query() QueryResolver
}

type DirectiveRoot struct {
	Auth func(ctx context.Context, obj any, next graphql.Resolver) (res any, err error)
}

type Config struct {
	Resolvers  ResolverRoot
	Directives DirectiveRoot
}

// fieldFunc resolves one root field from its coerced arguments.
type fieldFunc func(ctx context.Context, r ResolverRoot, args map[string]any) (any, error)

// NewExecutableSchema serves the operations in schema.graphqls. Root fields run
// in document order, one after the other, and every resolver result is
// written out following the selection set.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{
		resolvers:  cfg.Resolvers,
		directives: cfg.Directives,
	}
}

type executableSchema struct {
	// Complexity is never consulted: no complexity limit is installed.
	graphql.ExecutableSchema

	resolvers  ResolverRoot
	directives DirectiveRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var (
		typeName string
		table    map[string]fieldFunc
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		typeName, table = "Query", queryFields
	case ast.Mutation:
		typeName, table = "Mutation", mutationFields
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	w := &writer{opCtx: opCtx}
	data := &object{}

	for _, field := range graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{typeName}) {
		path := ast.Path{ast.PathName(field.Alias)}

		switch field.Name {
		case "__typename":
			data.set(field.Alias, typeName)
			continue
		case "__schema", "__type":
			data.set(field.Alias, w.introspect(field, path))
			continue
		}

		resolve, ok := table[field.Name]
		if !ok {
			w.errs = append(w.errs, &gqlerror.Error{
				Message:    fmt.Sprintf("field %s is not served", field.Name),
				Path:       path,
				Extensions: map[string]any{"code": "GRAPHQL_VALIDATION_FAILED"},
			})
			data.set(field.Alias, nil)
			continue
		}

		res, err := e.resolveRoot(ctx, field, resolve)
		if err != nil {
			w.errs = append(w.errs, presentError(ctx, err, path))
			data.set(field.Alias, nil)
			continue
		}
		data.set(field.Alias, w.value(reflect.ValueOf(res), field.Selections, path))
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "failed to encode response"))
	}
	return graphql.OneShot(&graphql.Response{Data: raw, Errors: w.errs})
}

func (e *executableSchema) resolveRoot(ctx context.Context, field graphql.CollectedField, resolve fieldFunc) (res any, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromCtx(ctx).Error("resolver panic",
				zap.String("field", field.Name),
				zap.Any("panic", p),
			)
			res, err = nil, fmt.Errorf("panic in %s: %v", field.Name, p)
		}
	}()

	opCtx := graphql.GetOperationContext(ctx)
	args := field.ArgumentMap(opCtx.Variables)

	next := func(ctx context.Context) (any, error) {
		return resolve(ctx, e.resolvers, args)
	}

	if field.Definition != nil && field.Definition.Directives.ForName("auth") != nil && e.directives.Auth != nil {
		return e.directives.Auth(ctx, nil, next)
	}
	return next(ctx)
}

// decodeArgs copies coerced GraphQL arguments into a struct tagged with the
// argument names. Numbers may arrive as int64, float64 or json.Number.
func decodeArgs(args map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return &gqlerror.Error{
			Message:    "invalid arguments: " + err.Error(),
			Extensions: map[string]any{"code": "BAD_USER_INPUT"},
		}
	}
	return nil
}

// writer turns resolver results into response values.
type writer struct {
	opCtx *graphql.OperationContext
	errs  gqlerror.List
}

func (w *writer) value(v reflect.Value, sel ast.SelectionSet, path ast.Path) any {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = w.value(v.Index(i), sel, child(path, ast.PathIndex(i)))
		}
		return out
	case reflect.Struct:
		return w.object(v, sel, path)
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Bool:
		return v.Bool()
	default:
		return v.Interface()
	}
}

func (w *writer) object(v reflect.Value, sel ast.SelectionSet, path ast.Path) any {
	typeName := graphqlTypeName(v.Type())
	out := &object{}

	for _, field := range graphql.CollectFields(w.opCtx, sel, []string{typeName}) {
		if field.Name == "__typename" {
			out.set(field.Alias, typeName)
			continue
		}

		fv, ok := fieldByTag(v, field.Name)
		if !ok {
			w.errs = append(w.errs, &gqlerror.Error{
				Message: fmt.Sprintf("%s.%s cannot be resolved", typeName, field.Name),
				Path:    child(path, ast.PathName(field.Alias)),
			})
			out.set(field.Alias, nil)
			continue
		}
		out.set(field.Alias, w.value(fv, field.Selections, child(path, ast.PathName(field.Alias))))
	}
	return out
}

func child(path ast.Path, el ast.PathElement) ast.Path {
	p := make(ast.Path, len(path), len(path)+1)
	copy(p, path)
	return append(p, el)
}

// graphqlTypeName maps a model struct to its schema type. The names match.
func graphqlTypeName(t reflect.Type) string {
	return t.Name()
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// object is a JSON object that keeps the order fields were selected in.
type object struct {
	keys   []string
	values []any
}

func (o *object) set(key string, value any) {
	for i, k := range o.keys {
		if k == key {
			o.values[i] = value
			return
		}
	}
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
