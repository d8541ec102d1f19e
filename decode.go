package qremis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/qremis/i18n"
	"github.com/reoring/qremis/internal/dupkey"
	"github.com/reoring/qremis/schema"
)

// Decode parses JSON in the serialized shape into a record of type typ from
// the default registry. Problems are reported as Issues with JSON Pointer
// paths. Objects repeating a key are rejected with CodeDuplicateKey.
func Decode(typ schema.TypeName, data []byte) (*Record, error) {
	return DecodeIn(defaultRegistry, typ, data)
}

// DecodeIn is like Decode but resolves types in reg.
func DecodeIn(reg *schema.Registry, typ schema.TypeName, data []byte) (*Record, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, parseIssues(err)
	}
	dups, err := dupkey.JSON(data)
	if err != nil {
		return nil, parseIssues(err)
	}
	if iss := duplicateIssues(dups); len(iss) > 0 {
		return nil, iss
	}
	return fromAny(reg, typ, v)
}

// DecodeYAML parses a YAML document in the serialized shape. Scalars are read
// as their literal text, so `size: 1024` yields the string "1024".
func DecodeYAML(typ schema.TypeName, data []byte) (*Record, error) {
	return DecodeYAMLIn(defaultRegistry, typ, data)
}

// DecodeYAMLIn is like DecodeYAML but resolves types in reg.
func DecodeYAMLIn(reg *schema.Registry, typ schema.TypeName, data []byte) (*Record, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, issuesFromError(rootPath(), &EmptyConstructionError{Type: typ})
		}
		return nil, parseIssues(err)
	}
	if iss := duplicateIssues(dupkey.YAML(&doc)); len(iss) > 0 {
		return nil, iss
	}
	return fromAny(reg, typ, yamlNodeToAny(&doc))
}

// FromMap builds a record of type typ from the serialized shape held in plain
// Go values (as returned by ToMap).
func FromMap(typ schema.TypeName, m map[string]any) (*Record, error) {
	return FromMapIn(defaultRegistry, typ, m)
}

// FromMapIn is like FromMap but resolves types in reg.
func FromMapIn(reg *schema.Registry, typ schema.TypeName, m map[string]any) (*Record, error) {
	if _, ok := reg.Lookup(typ); !ok {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownType, typ)
	}
	r, iss := buildRecord(reg, typ, m, rootPath())
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

func fromAny(reg *schema.Registry, typ schema.TypeName, v any) (*Record, error) {
	m, ok := v.(map[string]any)
	if !ok {
		msg := i18n.T(CodeTypeMismatch, map[string]string{"expected": "object", "actual": fmt.Sprintf("%T", v)})
		return nil, Issues{rootPath().Issue(CodeTypeMismatch, msg, "expected", "object")}
	}
	return FromMapIn(reg, typ, m)
}

func duplicateIssues(dups []dupkey.Duplicate) Issues {
	var iss Issues
	for _, d := range dups {
		p := rootPath()
		for _, seg := range d.Path {
			p = p.Field(seg)
		}
		iss = append(iss, p.Issue(CodeDuplicateKey, i18n.T(CodeDuplicateKey, map[string]string{"key": d.Key}), "key", d.Key))
	}
	return iss
}

func parseIssues(err error) Issues {
	return Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil) + ": " + err.Error()}}
}

// buildRecord decodes m bottom-up: children are built first, then the record
// is constructed through NewIn so every construction rule applies. The first
// element of each repeatable field is passed at construction (satisfying
// mandatory checks) and the rest are appended with Add.
func buildRecord(reg *schema.Registry, typ schema.TypeName, m map[string]any, p pathRef) (*Record, Issues) {
	e := reg.MustLookup(typ)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var iss Issues
	values := Values{}
	rest := map[string][]any{}
	for _, k := range keys {
		f, ok := e.Field(k)
		if !ok {
			iss = append(iss, p.Field(k).Issue(CodeUnknownField, i18n.T(CodeUnknownField, nil), "type", string(typ)))
			continue
		}
		fp := p.Field(k)
		if !f.Repeatable {
			v, sub := decodeValue(reg, f, m[k], fp)
			iss = append(iss, sub...)
			if len(sub) == 0 {
				values[k] = v
			}
			continue
		}
		arr, ok := m[k].([]any)
		if !ok {
			iss = append(iss, mismatchIssue(fp, "array of "+f.TypeName(), m[k]))
			continue
		}
		vals := make([]any, 0, len(arr))
		for i, raw := range arr {
			v, sub := decodeValue(reg, f, raw, fp.Index(i))
			iss = append(iss, sub...)
			vals = append(vals, v)
		}
		if len(vals) > 0 {
			values[k] = vals[0]
			rest[k] = vals[1:]
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	r, err := NewIn(reg, typ, nil, values)
	if err != nil {
		return nil, issuesFromError(p, err)
	}
	for _, k := range keys {
		for _, v := range rest[k] {
			if err := r.Add(k, v); err != nil {
				return nil, issuesFromError(p, err)
			}
		}
	}
	return r, nil
}

func decodeValue(reg *schema.Registry, f schema.Field, raw any, p pathRef) (any, Issues) {
	if f.Kind == schema.KindString {
		s, ok := raw.(string)
		if !ok {
			return nil, Issues{mismatchIssue(p, f.TypeName(), raw)}
		}
		return s, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, Issues{mismatchIssue(p, f.TypeName(), raw)}
	}
	child, iss := buildRecord(reg, f.Ref, m, p)
	if len(iss) > 0 {
		return nil, iss
	}
	return child, nil
}

func mismatchIssue(p pathRef, expected string, raw any) Issue {
	actual := fmt.Sprintf("%T", raw)
	switch raw.(type) {
	case nil:
		actual = "null"
	case map[string]any:
		actual = "object"
	case []any:
		actual = "array"
	}
	msg := i18n.T(CodeTypeMismatch, map[string]string{"expected": expected, "actual": actual})
	return p.Issue(CodeTypeMismatch, msg, "expected", expected, "actual", actual)
}

// yamlNodeToAny converts a YAML node tree into JSON-like values. Scalars keep
// their literal text; null scalars become nil.
func yamlNodeToAny(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return yamlNodeToAny(n.Content[0])
	case yaml.AliasNode:
		return yamlNodeToAny(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = yamlNodeToAny(n.Content[i+1])
		}
		return out
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, yamlNodeToAny(c))
		}
		return out
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil
		}
		return n.Value
	}
	return nil
}
