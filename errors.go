package qremis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/qremis/i18n"
	"github.com/reoring/qremis/schema"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyConstruction = "empty_construction"
	CodeUnknownField      = "unknown_field"
	CodeMissingMandatory  = "missing_mandatory"
	CodeTypeMismatch      = "type_mismatch"
	CodeFieldNotSet       = "field_not_set"
	CodeIndexOutOfRange   = "index_out_of_range"
	CodeNotRepeatable     = "not_repeatable"
	CodeCyclicSchema      = schema.CodeCyclicSchema
	CodeParseError        = "parse_error"
	CodeDuplicateKey      = "duplicate_key"
)

// CyclicSchemaError is returned by DescribeSchema when a record type reaches
// itself.
type CyclicSchemaError = schema.CyclicSchemaError

// ErrNilRecord is returned when a nil *Record is supplied as a positional
// child.
var ErrNilRecord = errors.New("qremis: nil record")

// EmptyConstructionError reports a construction with neither children nor
// values.
type EmptyConstructionError struct {
	Type schema.TypeName
}

func (e *EmptyConstructionError) Error() string {
	return fmt.Sprintf("qremis: %s: %s", e.Type, i18n.T(CodeEmptyConstruction, nil))
}

func (e *EmptyConstructionError) Code() string { return CodeEmptyConstruction }

// UnknownFieldError reports a field name that the record type does not
// declare. When a positional child has no receiving field, Child holds its
// type and Field is empty.
type UnknownFieldError struct {
	Type  schema.TypeName
	Field string
	Child schema.TypeName
}

func (e *UnknownFieldError) Error() string {
	if e.Field == "" && e.Child != "" {
		return fmt.Sprintf("qremis: %s: %s (no field holds %s)", e.Type, i18n.T(CodeUnknownField, nil), e.Child)
	}
	return fmt.Sprintf("qremis: %s.%s: %s", e.Type, e.Field, i18n.T(CodeUnknownField, nil))
}

func (e *UnknownFieldError) Code() string { return CodeUnknownField }

// MissingMandatoryFieldError lists every mandatory field absent at
// construction, in declaration order.
type MissingMandatoryFieldError struct {
	Type   schema.TypeName
	Fields []string
}

func (e *MissingMandatoryFieldError) Error() string {
	msg := i18n.T(CodeMissingMandatory, map[string]string{"fields": strings.Join(e.Fields, ", ")})
	return fmt.Sprintf("qremis: %s: %s", e.Type, msg)
}

func (e *MissingMandatoryFieldError) Code() string { return CodeMissingMandatory }

// TypeMismatchError reports a value whose kind differs from the field
// declaration. Expected and Actual are type names: "string" for primitives,
// the record type name for records, or the Go type for anything else.
type TypeMismatchError struct {
	Type     schema.TypeName
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	msg := i18n.T(CodeTypeMismatch, map[string]string{"expected": e.Expected, "actual": e.Actual})
	return fmt.Sprintf("qremis: %s.%s: %s", e.Type, e.Field, msg)
}

func (e *TypeMismatchError) Code() string { return CodeTypeMismatch }

// FieldNotSetError reports a read or delete of an absent field.
type FieldNotSetError struct {
	Type  schema.TypeName
	Field string
}

func (e *FieldNotSetError) Error() string {
	return fmt.Sprintf("qremis: %s.%s: %s", e.Type, e.Field, i18n.T(CodeFieldNotSet, nil))
}

func (e *FieldNotSetError) Code() string { return CodeFieldNotSet }

// IndexOutOfRangeError reports an indexed delete outside [0, Len).
type IndexOutOfRangeError struct {
	Type  schema.TypeName
	Field string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("qremis: %s.%s[%d]: %s (len %d)", e.Type, e.Field, e.Index, i18n.T(CodeIndexOutOfRange, nil), e.Len)
}

func (e *IndexOutOfRangeError) Code() string { return CodeIndexOutOfRange }

// NotRepeatableError reports a sequence operation on a scalar field.
type NotRepeatableError struct {
	Type  schema.TypeName
	Field string
}

func (e *NotRepeatableError) Error() string {
	return fmt.Sprintf("qremis: %s.%s: %s", e.Type, e.Field, i18n.T(CodeNotRepeatable, nil))
}

func (e *NotRepeatableError) Code() string { return CodeNotRepeatable }

// coded is implemented by every error of this package.
type coded interface {
	Code() string
}

// ErrorCode returns the code carried by err, or "" when err carries none.
func ErrorCode(err error) string {
	var c coded
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /object/0/objectCategory).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"expected":"string"}) for
	// i18n and tooling.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_mandatory at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// issuesFromError converts an engine error raised while building the record
// at p into Issues located at the offending field.
func issuesFromError(p pathRef, err error) Issues {
	var (
		iss  Issues
		miss *MissingMandatoryFieldError
		unk  *UnknownFieldError
		tm   *TypeMismatchError
	)
	switch {
	case errors.As(err, &iss):
		return iss
	case errors.As(err, &miss):
		out := make(Issues, 0, len(miss.Fields))
		for _, f := range miss.Fields {
			out = append(out, p.Field(f).Issue(CodeMissingMandatory, i18n.T(CodeMissingMandatory, map[string]string{"fields": f}), "type", string(miss.Type)))
		}
		return out
	case errors.As(err, &unk):
		return Issues{p.Field(unk.Field).Issue(CodeUnknownField, i18n.T(CodeUnknownField, nil), "type", string(unk.Type))}
	case errors.As(err, &tm):
		msg := i18n.T(CodeTypeMismatch, map[string]string{"expected": tm.Expected, "actual": tm.Actual})
		return Issues{p.Field(tm.Field).Issue(CodeTypeMismatch, msg, "expected", tm.Expected, "actual", tm.Actual)}
	}
	code := ErrorCode(err)
	if code == "" {
		code = CodeParseError
	}
	return Issues{{Path: p.Pointer(), Code: code, Message: err.Error()}}
}

// pathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type pathRef struct {
	parts []string
}

func rootPath() pathRef { return pathRef{} }

func (p pathRef) Field(name string) pathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p pathRef) Index(i int) pathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}
