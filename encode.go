package qremis

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/qremis/schema"
)

// Serialized shape
//
// A record encodes as an object holding its set fields in schema declaration
// order. Scalar string fields encode as strings, scalar record fields as
// nested objects, and repeatable fields as arrays (never empty, since an
// emptied field is absent). The record type itself is not embedded: the root
// type is known to the caller and every nested type follows from the parent's
// field declaration. Decode, DecodeYAML and FromMap read the same shape.
//
// The mapping is not total in the decode direction. A record whose fields
// were all deleted encodes as {} (or an empty YAML mapping), and decoding
// that fails with CodeEmptyConstruction because construction never yields an
// empty record. An empty YAML document fails the same way. A record
// reachable from itself cannot be encoded; the encoders return a
// CyclicSchemaError instead.

// Serialize encodes r as JSON.
func Serialize(r *Record) ([]byte, error) { return r.MarshalJSON() }

// MarshalJSON implements json.Marshaler with deterministic key order. A record
// reachable from itself fails with a CyclicSchemaError.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	if err := r.writeJSON(&buf, &walkPath{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// walkPath tracks the records on the current recursion path.
type walkPath struct {
	stack []*Record
}

func (w *walkPath) enter(r *Record) error {
	for i, p := range w.stack {
		if p == r {
			types := make([]schema.TypeName, 0, len(w.stack)-i+1)
			for _, q := range w.stack[i:] {
				types = append(types, q.Type())
			}
			return &CyclicSchemaError{Path: append(types, r.Type())}
		}
	}
	w.stack = append(w.stack, r)
	return nil
}

func (w *walkPath) leave() { w.stack = w.stack[:len(w.stack)-1] }

func (r *Record) writeJSON(buf *bytes.Buffer, w *walkPath) error {
	if err := w.enter(r); err != nil {
		return err
	}
	defer w.leave()
	buf.WriteByte('{')
	for i, name := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if seq, ok := r.fields.Seq(name); ok {
			buf.WriteByte('[')
			for j, el := range seq {
				if j > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSONValue(buf, el, w); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
			continue
		}
		v, _ := r.fields.Scalar(name)
		if err := writeJSONValue(buf, v, w); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any, w *walkPath) error {
	if c, ok := v.(*Record); ok {
		return c.writeJSON(buf, w)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ToMap returns the serialized shape of r as plain Go values:
// map[string]any, []any and string. A nil record yields a nil map.
func ToMap(r *Record) (map[string]any, error) {
	if r == nil {
		return nil, nil
	}
	return r.toMap(&walkPath{})
}

func (r *Record) toMap(w *walkPath) (map[string]any, error) {
	if err := w.enter(r); err != nil {
		return nil, err
	}
	defer w.leave()
	out := make(map[string]any, r.fields.Len())
	for _, name := range r.Fields() {
		if seq, ok := r.fields.Seq(name); ok {
			arr := make([]any, len(seq))
			for i, el := range seq {
				v, err := plainValue(el, w)
				if err != nil {
					return nil, err
				}
				arr[i] = v
			}
			out[name] = arr
			continue
		}
		v, _ := r.fields.Scalar(name)
		pv, err := plainValue(v, w)
		if err != nil {
			return nil, err
		}
		out[name] = pv
	}
	return out, nil
}

func plainValue(v any, w *walkPath) (any, error) {
	if c, ok := v.(*Record); ok {
		return c.toMap(w)
	}
	return v, nil
}

// EncodeYAML encodes r as a YAML document with the same shape and key order as
// Serialize.
func EncodeYAML(r *Record) ([]byte, error) {
	var doc any
	if r != nil {
		n, err := r.yamlNode(&walkPath{})
		if err != nil {
			return nil, err
		}
		doc = n
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *Record) MarshalYAML() (any, error) {
	return r.yamlNode(&walkPath{})
}

func (r *Record) yamlNode(w *walkPath) (*yaml.Node, error) {
	if err := w.enter(r); err != nil {
		return nil, err
	}
	defer w.leave()
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range r.Fields() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		var val *yaml.Node
		if seq, ok := r.fields.Seq(name); ok {
			val = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, el := range seq {
				c, err := yamlValue(el, w)
				if err != nil {
					return nil, err
				}
				val.Content = append(val.Content, c)
			}
		} else {
			v, _ := r.fields.Scalar(name)
			c, err := yamlValue(v, w)
			if err != nil {
				return nil, err
			}
			val = c
		}
		n.Content = append(n.Content, key, val)
	}
	return n, nil
}

func yamlValue(v any, w *walkPath) (*yaml.Node, error) {
	if c, ok := v.(*Record); ok {
		return c.yamlNode(w)
	}
	s, _ := v.(string)
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
}
