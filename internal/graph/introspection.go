package graph

import (
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// introspect answers the __schema and __type root fields from the parsed schema.
func (w *writer) introspect(field graphql.CollectedField, path ast.Path) any {
	if w.opCtx.DisableIntrospection {
		w.errs = append(w.errs, &gqlerror.Error{
			Message:    "introspection disabled",
			Path:       path,
			Extensions: map[string]any{"code": "GRAPHQL_VALIDATION_FAILED"},
		})
		return nil
	}

	if field.Name == "__schema" {
		return w.schema(introspection.WrapSchema(parsedSchema), field.Selections, path)
	}

	name, _ := field.ArgumentMap(w.opCtx.Variables)["name"].(string)
	return w.introType(introspection.WrapTypeFromDef(parsedSchema, parsedSchema.Types[name]), field.Selections, path)
}

func (w *writer) schema(s *introspection.Schema, sel ast.SelectionSet, path ast.Path) any {
	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__Schema"}) {
		p := child(path, ast.PathName(f.Alias))
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__Schema")
		case "description":
			out.set(f.Alias, optString(s.Description()))
		case "types":
			out.set(f.Alias, each(s.Types(), p, func(t *introspection.Type, p ast.Path) any { return w.introType(t, f.Selections, p) }))
		case "queryType":
			out.set(f.Alias, w.introType(s.QueryType(), f.Selections, p))
		case "mutationType":
			out.set(f.Alias, w.introType(s.MutationType(), f.Selections, p))
		case "subscriptionType":
			out.set(f.Alias, w.introType(s.SubscriptionType(), f.Selections, p))
		case "directives":
			out.set(f.Alias, each(s.Directives(), p, func(d *introspection.Directive, p ast.Path) any { return w.directive(d, f.Selections, p) }))
		default:
			out.set(f.Alias, w.unknown("__Schema", f, p))
		}
	}
	return out
}

func (w *writer) introType(t *introspection.Type, sel ast.SelectionSet, path ast.Path) any {
	if t == nil {
		return nil
	}

	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__Type"}) {
		p := child(path, ast.PathName(f.Alias))
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__Type")
		case "kind":
			out.set(f.Alias, t.Kind())
		case "name":
			out.set(f.Alias, optString(t.Name()))
		case "description":
			out.set(f.Alias, optString(t.Description()))
		case "specifiedByURL":
			out.set(f.Alias, optString(t.SpecifiedByURL()))
		case "fields":
			out.set(f.Alias, each(t.Fields(w.includeDeprecated(f)), p, func(fd *introspection.Field, p ast.Path) any { return w.introField(fd, f.Selections, p) }))
		case "inputFields":
			out.set(f.Alias, each(t.InputFields(), p, func(iv *introspection.InputValue, p ast.Path) any { return w.inputValue(iv, f.Selections, p) }))
		case "interfaces":
			out.set(f.Alias, each(t.Interfaces(), p, func(it *introspection.Type, p ast.Path) any { return w.introType(it, f.Selections, p) }))
		case "possibleTypes":
			out.set(f.Alias, each(t.PossibleTypes(), p, func(pt *introspection.Type, p ast.Path) any { return w.introType(pt, f.Selections, p) }))
		case "enumValues":
			out.set(f.Alias, each(t.EnumValues(w.includeDeprecated(f)), p, func(ev *introspection.EnumValue, p ast.Path) any { return w.enumValue(ev, f.Selections, p) }))
		case "ofType":
			out.set(f.Alias, w.introType(t.OfType(), f.Selections, p))
		case "isOneOf":
			out.set(f.Alias, t.IsOneOf())
		default:
			out.set(f.Alias, w.unknown("__Type", f, p))
		}
	}
	return out
}

func (w *writer) introField(fd *introspection.Field, sel ast.SelectionSet, path ast.Path) any {
	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__Field"}) {
		p := child(path, ast.PathName(f.Alias))
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__Field")
		case "name":
			out.set(f.Alias, fd.Name)
		case "description":
			out.set(f.Alias, optString(fd.Description()))
		case "args":
			out.set(f.Alias, each(fd.Args, p, func(iv *introspection.InputValue, p ast.Path) any { return w.inputValue(iv, f.Selections, p) }))
		case "type":
			out.set(f.Alias, w.introType(fd.Type, f.Selections, p))
		case "isDeprecated":
			out.set(f.Alias, fd.IsDeprecated())
		case "deprecationReason":
			out.set(f.Alias, optString(fd.DeprecationReason()))
		default:
			out.set(f.Alias, w.unknown("__Field", f, p))
		}
	}
	return out
}

func (w *writer) inputValue(iv *introspection.InputValue, sel ast.SelectionSet, path ast.Path) any {
	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__InputValue"}) {
		p := child(path, ast.PathName(f.Alias))
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__InputValue")
		case "name":
			out.set(f.Alias, iv.Name)
		case "description":
			out.set(f.Alias, optString(iv.Description()))
		case "type":
			out.set(f.Alias, w.introType(iv.Type, f.Selections, p))
		case "defaultValue":
			out.set(f.Alias, optString(iv.DefaultValue))
		case "isDeprecated":
			out.set(f.Alias, iv.IsDeprecated())
		case "deprecationReason":
			out.set(f.Alias, optString(iv.DeprecationReason()))
		default:
			out.set(f.Alias, w.unknown("__InputValue", f, p))
		}
	}
	return out
}

func (w *writer) enumValue(ev *introspection.EnumValue, sel ast.SelectionSet, path ast.Path) any {
	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__EnumValue"}) {
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__EnumValue")
		case "name":
			out.set(f.Alias, ev.Name)
		case "description":
			out.set(f.Alias, optString(ev.Description()))
		case "isDeprecated":
			out.set(f.Alias, ev.IsDeprecated())
		case "deprecationReason":
			out.set(f.Alias, optString(ev.DeprecationReason()))
		default:
			out.set(f.Alias, w.unknown("__EnumValue", f, child(path, ast.PathName(f.Alias))))
		}
	}
	return out
}

func (w *writer) directive(d *introspection.Directive, sel ast.SelectionSet, path ast.Path) any {
	out := &object{}
	for _, f := range graphql.CollectFields(w.opCtx, sel, []string{"__Directive"}) {
		p := child(path, ast.PathName(f.Alias))
		switch f.Name {
		case "__typename":
			out.set(f.Alias, "__Directive")
		case "name":
			out.set(f.Alias, d.Name)
		case "description":
			out.set(f.Alias, optString(d.Description()))
		case "locations":
			out.set(f.Alias, d.Locations)
		case "args":
			out.set(f.Alias, each(d.Args, p, func(iv *introspection.InputValue, p ast.Path) any { return w.inputValue(iv, f.Selections, p) }))
		case "isRepeatable":
			out.set(f.Alias, d.IsRepeatable)
		default:
			out.set(f.Alias, w.unknown("__Directive", f, p))
		}
	}
	return out
}

func (w *writer) includeDeprecated(f graphql.CollectedField) bool {
	v, _ := f.ArgumentMap(w.opCtx.Variables)["includeDeprecated"].(bool)
	return v
}

func (w *writer) unknown(typeName string, f graphql.CollectedField, path ast.Path) any {
	w.errs = append(w.errs, &gqlerror.Error{
		Message: fmt.Sprintf("%s.%s cannot be resolved", typeName, f.Name),
		Path:    path,
	})
	return nil
}

func each[T any](items []T, path ast.Path, write func(*T, ast.Path) any) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = write(&items[i], child(path, ast.PathIndex(i)))
	}
	return out
}

func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
