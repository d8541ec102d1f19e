package qremis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/reoring/qremis/internal/store"
	"github.com/reoring/qremis/schema"
)

// Values supplies named field values at construction. Each value is a string
// or a *Record matching the field declaration.
type Values map[string]any

// Record is a live instance of one record type. Its fields are validated
// against the type's schema entry on construction and on every mutation.
//
// A Record is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access to it and its children. A child attached
// to a field belongs to that field; attaching the same child to several
// parents is not supported.
type Record struct {
	entry  *schema.Entry
	fields *store.Store
}

// New constructs a record of type typ from the default registry.
//
// Each positional child is routed to the field declared to hold its record
// type; named values are routed by key. Repeatable fields receive values
// through Add and scalar fields through Set. Construction fails with
// EmptyConstructionError, UnknownFieldError, MissingMandatoryFieldError or
// TypeMismatchError, in which case no record is returned.
func New(typ schema.TypeName, children []*Record, values Values) (*Record, error) {
	return NewIn(defaultRegistry, typ, children, values)
}

// NewIn is like New but resolves typ in reg.
func NewIn(reg *schema.Registry, typ schema.TypeName, children []*Record, values Values) (*Record, error) {
	e, ok := reg.Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownType, typ)
	}
	if len(children) == 0 && len(values) == 0 {
		return nil, &EmptyConstructionError{Type: typ}
	}

	supplied := make(map[string]struct{}, len(children)+len(values))
	routes := make([]schema.Field, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("qremis: %s: child %d: %w", typ, i, ErrNilRecord)
		}
		f, ok := e.FieldFor(c.Type())
		if !ok {
			return nil, &UnknownFieldError{Type: typ, Child: c.Type()}
		}
		routes[i] = f
		supplied[f.Name] = struct{}{}
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := e.Field(k); !ok {
			return nil, &UnknownFieldError{Type: typ, Field: k}
		}
		supplied[k] = struct{}{}
	}
	var missing []string
	for _, name := range e.Mandatory() {
		if _, ok := supplied[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingMandatoryFieldError{Type: typ, Fields: missing}
	}

	r := &Record{entry: e, fields: store.New()}
	for i, c := range children {
		if err := r.route(routes[i], c); err != nil {
			return nil, err
		}
	}
	for _, k := range keys {
		f, _ := e.Field(k)
		if err := r.route(f, values[k]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(typ schema.TypeName, children []*Record, values Values) *Record {
	r, err := New(typ, children, values)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Record) route(f schema.Field, v any) error {
	if f.Repeatable {
		return r.add(f, v)
	}
	return r.set(f, v)
}

// Type returns the record type name.
func (r *Record) Type() schema.TypeName { return r.entry.Name() }

// Schema returns the schema entry the record is validated against.
func (r *Record) Schema() *schema.Entry { return r.entry }

// Has reports whether field name holds a value.
func (r *Record) Has(name string) bool { return r.fields.Has(name) }

// Fields returns the names of fields holding a value, in declaration order.
func (r *Record) Fields() []string {
	out := make([]string, 0, r.fields.Len())
	for _, f := range r.entry.Fields() {
		if r.fields.Has(f.Name) {
			out = append(out, f.Name)
		}
	}
	return out
}

func (r *Record) field(name string) (schema.Field, error) {
	f, ok := r.entry.Field(name)
	if !ok {
		return schema.Field{}, &UnknownFieldError{Type: r.Type(), Field: name}
	}
	return f, nil
}

// Get returns the value of field name: a string or *Record for scalar fields,
// a fresh []any in insertion order for repeatable ones.
func (r *Record) Get(name string) (any, error) {
	f, err := r.field(name)
	if err != nil {
		return nil, err
	}
	if f.Repeatable {
		seq, ok := r.fields.Seq(name)
		if !ok {
			return nil, &FieldNotSetError{Type: r.Type(), Field: name}
		}
		return seq, nil
	}
	v, ok := r.fields.Scalar(name)
	if !ok {
		return nil, &FieldNotSetError{Type: r.Type(), Field: name}
	}
	return v, nil
}

// GetString returns a scalar string field.
func (r *Record) GetString(name string) (string, error) {
	f, err := r.scalarOf(name, schema.KindString)
	if err != nil {
		return "", err
	}
	v, ok := r.fields.Scalar(name)
	if !ok {
		return "", &FieldNotSetError{Type: r.Type(), Field: f.Name}
	}
	return v.(string), nil
}

// GetRecord returns a scalar record field.
func (r *Record) GetRecord(name string) (*Record, error) {
	f, err := r.scalarOf(name, schema.KindRecord)
	if err != nil {
		return nil, err
	}
	v, ok := r.fields.Scalar(name)
	if !ok {
		return nil, &FieldNotSetError{Type: r.Type(), Field: f.Name}
	}
	return v.(*Record), nil
}

// GetStrings returns a repeatable string field.
func (r *Record) GetStrings(name string) ([]string, error) {
	seq, err := r.seqOf(name, schema.KindString)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(seq))
	for i, v := range seq {
		out[i] = v.(string)
	}
	return out, nil
}

// GetRecords returns a repeatable record field.
func (r *Record) GetRecords(name string) ([]*Record, error) {
	seq, err := r.seqOf(name, schema.KindRecord)
	if err != nil {
		return nil, err
	}
	out := make([]*Record, len(seq))
	for i, v := range seq {
		out[i] = v.(*Record)
	}
	return out, nil
}

func (r *Record) scalarOf(name string, k schema.Kind) (schema.Field, error) {
	f, err := r.field(name)
	if err != nil {
		return f, err
	}
	if f.Repeatable {
		return f, &TypeMismatchError{Type: r.Type(), Field: name, Expected: "sequence of " + f.TypeName(), Actual: k.String()}
	}
	if f.Kind != k {
		return f, &TypeMismatchError{Type: r.Type(), Field: name, Expected: f.TypeName(), Actual: k.String()}
	}
	return f, nil
}

func (r *Record) seqOf(name string, k schema.Kind) ([]any, error) {
	f, err := r.field(name)
	if err != nil {
		return nil, err
	}
	if !f.Repeatable {
		return nil, &NotRepeatableError{Type: r.Type(), Field: name}
	}
	if f.Kind != k {
		return nil, &TypeMismatchError{Type: r.Type(), Field: name, Expected: f.TypeName(), Actual: k.String()}
	}
	seq, ok := r.fields.Seq(name)
	if !ok {
		return nil, &FieldNotSetError{Type: r.Type(), Field: name}
	}
	return seq, nil
}

// Set assigns field name.
//
// For a scalar field v replaces any previous value. For a repeatable field v is
// appended as one element; if v does not match the element kind, Set retries
// with v as a collection ([]string, []*Record or []any) and appends every
// element in order. A failing Set leaves the record unchanged.
func (r *Record) Set(name string, v any) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	return r.set(f, v)
}

func (r *Record) set(f schema.Field, v any) error {
	if !f.Repeatable {
		if err := r.check(f, v); err != nil {
			return err
		}
		r.fields.Put(f.Name, v)
		return nil
	}
	err := r.add(f, v)
	var tm *TypeMismatchError
	if err == nil || !errors.As(err, &tm) {
		return err
	}
	elems, ok := asCollection(v)
	if !ok {
		return err
	}
	for _, el := range elems {
		if err := r.check(f, el); err != nil {
			return err
		}
	}
	r.fields.Append(f.Name, elems...)
	return nil
}

// Add appends v to the repeatable field name, creating the sequence on first
// use. Scalar fields fail with NotRepeatableError.
func (r *Record) Add(name string, v any) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	if !f.Repeatable {
		return &NotRepeatableError{Type: r.Type(), Field: name}
	}
	return r.add(f, v)
}

func (r *Record) add(f schema.Field, v any) error {
	if err := r.check(f, v); err != nil {
		return err
	}
	r.fields.Append(f.Name, v)
	return nil
}

// Delete removes field name entirely.
//
// Mandatory fields may be deleted; construction is the only point where their
// presence is enforced. Use Validate to detect records left incomplete.
func (r *Record) Delete(name string) error {
	if _, err := r.field(name); err != nil {
		return err
	}
	if !r.fields.Remove(name) {
		return &FieldNotSetError{Type: r.Type(), Field: name}
	}
	return nil
}

// DeleteAt removes element i of the repeatable field name. Removing the last
// element makes the field absent.
func (r *Record) DeleteAt(name string, i int) error {
	f, err := r.field(name)
	if err != nil {
		return err
	}
	if !f.Repeatable {
		return &NotRepeatableError{Type: r.Type(), Field: name}
	}
	if !r.fields.Has(name) {
		return &FieldNotSetError{Type: r.Type(), Field: name}
	}
	if !r.fields.RemoveAt(name, i) {
		return &IndexOutOfRangeError{Type: r.Type(), Field: name, Index: i, Len: r.fields.SeqLen(name)}
	}
	return nil
}

// check verifies that v matches the kind declared for f.
func (r *Record) check(f schema.Field, v any) error {
	switch f.Kind {
	case schema.KindString:
		if _, ok := v.(string); ok {
			return nil
		}
	case schema.KindRecord:
		if c, ok := v.(*Record); ok && c != nil && c.Type() == f.Ref {
			return nil
		}
	}
	return &TypeMismatchError{Type: r.Type(), Field: f.Name, Expected: f.TypeName(), Actual: kindOf(v)}
}

func kindOf(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case string:
		return schema.PrimitiveTypeName
	case *Record:
		if t == nil {
			return "nil"
		}
		return string(t.Type())
	default:
		return fmt.Sprintf("%T", v)
	}
}

func asCollection(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []*Record:
		out := make([]any, len(t))
		for i, c := range t {
			out[i] = c
		}
		return out, true
	}
	return nil, false
}
