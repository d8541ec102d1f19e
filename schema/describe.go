package schema

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/qremis/i18n"
)

// CodeCyclicSchema is the error code carried by CyclicSchemaError.
const CodeCyclicSchema = "cyclic_schema"

// CyclicSchemaError reports a record type that references itself, directly or
// transitively. Path lists the types from the first occurrence to the repeat.
type CyclicSchemaError struct {
	Path []TypeName
}

func (e *CyclicSchemaError) Error() string {
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = string(p)
	}
	return "schema: " + i18n.T(CodeCyclicSchema, map[string]string{"path": strings.Join(parts, " -> ")})
}

// Code returns CodeCyclicSchema.
func (e *CyclicSchemaError) Code() string { return CodeCyclicSchema }

// FieldDescription describes one field. Spec is set only for record-kind
// fields and holds the referenced type's own description.
//
// Encoded, a record-kind field always carries "spec", empty ({}) when the
// referenced type declares no fields; a primitive field never does.
type FieldDescription struct {
	Repeatable bool
	Mandatory  bool
	Type       string
	Spec       Description
}

type encodedFieldDescription struct {
	Repeatable bool         `json:"repeatable" yaml:"repeatable"`
	Mandatory  bool         `json:"mandatory" yaml:"mandatory"`
	Type       string       `json:"type" yaml:"type"`
	Spec       *Description `json:"spec,omitempty" yaml:"spec,omitempty"`
}

func (d FieldDescription) encoded() encodedFieldDescription {
	out := encodedFieldDescription{Repeatable: d.Repeatable, Mandatory: d.Mandatory, Type: d.Type}
	if d.Type != PrimitiveTypeName {
		spec := d.Spec
		if spec == nil {
			spec = Description{}
		}
		out.Spec = &spec
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (d FieldDescription) MarshalJSON() ([]byte, error) { return json.Marshal(d.encoded()) }

// MarshalYAML implements yaml.Marshaler.
func (d FieldDescription) MarshalYAML() (any, error) { return d.encoded(), nil }

// Description maps field names of a record type to their descriptions.
type Description map[string]FieldDescription

// Describe walks reg from root and returns the nested description of every
// reachable record type. A type may appear in several branches; a type
// reachable from itself yields a CyclicSchemaError.
func Describe(reg *Registry, root TypeName) (Description, error) {
	if _, ok := reg.Lookup(root); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, root)
	}
	w := &describer{reg: reg, onPath: map[TypeName]bool{}}
	return w.describe(root)
}

type describer struct {
	reg    *Registry
	path   []TypeName
	onPath map[TypeName]bool
}

func (w *describer) describe(name TypeName) (Description, error) {
	if w.onPath[name] {
		cycle := append(append([]TypeName{}, w.path[w.indexOf(name):]...), name)
		return nil, &CyclicSchemaError{Path: cycle}
	}
	e, ok := w.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	w.onPath[name] = true
	w.path = append(w.path, name)
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, name)
	}()

	out := make(Description, e.Len())
	for _, f := range e.fields {
		fd := FieldDescription{
			Repeatable: f.Repeatable,
			Mandatory:  f.Mandatory,
			Type:       f.TypeName(),
		}
		if f.Kind == KindRecord {
			sub, err := w.describe(f.Ref)
			if err != nil {
				return nil, err
			}
			fd.Spec = sub
		}
		out[f.Name] = fd
	}
	return out, nil
}

func (w *describer) indexOf(name TypeName) int {
	for i, p := range w.path {
		if p == name {
			return i
		}
	}
	return 0
}
