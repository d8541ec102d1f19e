package schema

import (
	"fmt"

	js "github.com/reoring/qremis/jsonschema"
)

// JSONSchema projects the record types reachable from root into a JSON Schema
// document matching the serialized record shape: each type becomes a $defs
// entry, record-kind fields link through $ref, and repeatable fields become
// non-empty arrays. Cyclic registries project fine since types are linked by
// reference.
func JSONSchema(reg *Registry, root TypeName) (*js.Schema, error) {
	if _, ok := reg.Lookup(root); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, root)
	}
	defs := map[string]*js.Schema{}
	queue := []TypeName{root}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if _, done := defs[string(name)]; done {
			continue
		}
		e, ok := reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		obj := &js.Schema{
			Title:                string(name),
			Type:                 "object",
			AdditionalProperties: false,
		}
		if e.Len() > 0 {
			obj.Properties = make(map[string]*js.Schema, e.Len())
		}
		for _, f := range e.fields {
			var item *js.Schema
			if f.Kind == KindRecord {
				item = &js.Schema{Ref: js.DefRef(string(f.Ref))}
				queue = append(queue, f.Ref)
			} else {
				item = &js.Schema{Type: "string"}
			}
			if f.Repeatable {
				one := 1
				item = &js.Schema{Type: "array", Items: item, MinItems: &one}
			}
			obj.Properties[f.Name] = item
			if f.Mandatory {
				obj.Required = append(obj.Required, f.Name)
			}
		}
		defs[string(name)] = obj
	}
	return &js.Schema{
		Schema: js.Draft,
		Ref:    js.DefRef(string(root)),
		Defs:   defs,
	}, nil
}
