package schema

import (
	"errors"
	"fmt"
)

// Kind identifies the value kind a field accepts.
type Kind int

const (
	KindString Kind = iota // Primitive leaf: a plain string.
	KindRecord             // A record instance of the type named by Field.Ref.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeName names a record type within a Registry.
type TypeName string

// PrimitiveTypeName is the type name reported for primitive string fields.
const PrimitiveTypeName = "string"

// ErrUnknownType is returned when a record type is not declared in a Registry.
var ErrUnknownType = errors.New("schema: unknown record type")

// Field is one field declaration of a record type.
type Field struct {
	Name       string
	Repeatable bool
	Mandatory  bool
	Kind       Kind
	Ref        TypeName // set when Kind == KindRecord
}

// TypeName returns the declared value type: PrimitiveTypeName for strings,
// the referenced record type otherwise.
func (f Field) TypeName() string {
	if f.Kind == KindRecord {
		return string(f.Ref)
	}
	return PrimitiveTypeName
}

// Entry is the schema of one record type: its fields in declaration order.
type Entry struct {
	name     TypeName
	fields   []Field
	index    map[string]int
	children map[TypeName]int
}

// Name returns the record type name.
func (e *Entry) Name() TypeName { return e.name }

// Len returns the number of declared fields.
func (e *Entry) Len() int { return len(e.fields) }

// Fields returns the field declarations in declaration order.
func (e *Entry) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Field looks up a field declaration by name.
func (e *Entry) Field(name string) (Field, bool) {
	i, ok := e.index[name]
	if !ok {
		return Field{}, false
	}
	return e.fields[i], true
}

// FieldFor returns the field that receives positional children of the given
// record type. A Registry guarantees at most one such field per entry.
func (e *Entry) FieldFor(child TypeName) (Field, bool) {
	i, ok := e.children[child]
	if !ok {
		return Field{}, false
	}
	return e.fields[i], true
}

// Mandatory returns the names of mandatory fields in declaration order.
func (e *Entry) Mandatory() []string {
	var out []string
	for _, f := range e.fields {
		if f.Mandatory {
			out = append(out, f.Name)
		}
	}
	return out
}

// Registry is an immutable set of record type entries. It has no mutation
// path after Build and is safe for concurrent readers.
type Registry struct {
	entries map[TypeName]*Entry
	order   []TypeName
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name TypeName) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// MustLookup is like Lookup but panics when name is not declared.
func (r *Registry) MustLookup(name TypeName) *Entry {
	e, ok := r.entries[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownType, name))
	}
	return e
}

// Types returns every declared record type in declaration order.
func (r *Registry) Types() []TypeName {
	out := make([]TypeName, len(r.order))
	copy(out, r.order)
	return out
}
