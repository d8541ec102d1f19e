package schema

import (
	"errors"
	"fmt"
)

// Builder collects record type declarations and produces an immutable
// Registry.
//
//	b := schema.NewBuilder()
//	b.Type("Fixity").
//		Field("messageDigestAlgorithm").Mandatory().
//		Field("messageDigest").Mandatory().
//		Field("messageDigestOriginator")
//	b.Type("ObjectCharacteristics").
//		Field("fixity").Of("Fixity").Repeatable()
//	reg, err := b.Build()
type Builder struct {
	decls []*typeDecl
}

type typeDecl struct {
	name   TypeName
	fields []*Field
}

// TypeStep declares fields of one record type.
type TypeStep struct {
	b    *Builder
	decl *typeDecl
}

// FieldStep refines the most recently declared field.
type FieldStep struct {
	t *TypeStep
	f *Field
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Type starts the declaration of a record type. A type with no fields is a
// valid (empty) declaration.
func (b *Builder) Type(name TypeName) *TypeStep {
	d := &typeDecl{name: name}
	b.decls = append(b.decls, d)
	return &TypeStep{b: b, decl: d}
}

// Field declares an optional, non-repeatable string field.
func (t *TypeStep) Field(name string) *FieldStep {
	f := &Field{Name: name, Kind: KindString}
	t.decl.fields = append(t.decl.fields, f)
	return &FieldStep{t: t, f: f}
}

// Mandatory marks the field as required at construction.
func (s *FieldStep) Mandatory() *FieldStep {
	s.f.Mandatory = true
	return s
}

// Repeatable marks the field as an ordered sequence of values.
func (s *FieldStep) Repeatable() *FieldStep {
	s.f.Repeatable = true
	return s
}

// Of makes the field hold records of the given type.
func (s *FieldStep) Of(ref TypeName) *FieldStep {
	s.f.Kind = KindRecord
	s.f.Ref = ref
	return s
}

func (s *FieldStep) Field(name string) *FieldStep { return s.t.Field(name) }
func (s *FieldStep) Type(name TypeName) *TypeStep { return s.t.b.Type(name) }

// Build validates the declarations and returns the Registry. It reports every
// problem found:
//   - a record type declared twice
//   - a field name declared twice within a type
//   - a field referencing an undeclared record type
//   - two fields of one type referencing the same record type, which would make
//     positional construction ambiguous
//
// Reference cycles are allowed here; Describe detects them.
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{entries: make(map[TypeName]*Entry, len(b.decls))}
	var errs []error
	for _, d := range b.decls {
		if _, dup := reg.entries[d.name]; dup {
			errs = append(errs, fmt.Errorf("schema: record type %q declared twice", d.name))
			continue
		}
		e := &Entry{
			name:     d.name,
			fields:   make([]Field, 0, len(d.fields)),
			index:    make(map[string]int, len(d.fields)),
			children: map[TypeName]int{},
		}
		for _, f := range d.fields {
			if _, dup := e.index[f.Name]; dup {
				errs = append(errs, fmt.Errorf("schema: %s: field %q declared twice", d.name, f.Name))
				continue
			}
			if f.Kind == KindRecord {
				if prev, dup := e.children[f.Ref]; dup {
					errs = append(errs, fmt.Errorf("schema: %s: fields %q and %q both hold %s",
						d.name, e.fields[prev].Name, f.Name, f.Ref))
					continue
				}
				e.children[f.Ref] = len(e.fields)
			}
			e.index[f.Name] = len(e.fields)
			e.fields = append(e.fields, *f)
		}
		reg.entries[d.name] = e
		reg.order = append(reg.order, d.name)
	}
	for _, name := range reg.order {
		for _, f := range reg.entries[name].fields {
			if f.Kind != KindRecord {
				continue
			}
			if _, ok := reg.entries[f.Ref]; !ok {
				errs = append(errs, fmt.Errorf("schema: %s.%s: %w: %q", name, f.Name, ErrUnknownType, f.Ref))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// MustBuild is like Build but panics on error. It is meant for registries
// declared at package initialization.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return reg
}
