// Package dupkey finds duplicate object keys in JSON and YAML documents.
// Decoders that unmarshal into maps keep only the last occurrence of a key, so
// callers run these scans first to reject ambiguous input. This package is
// internal and not part of the public API.
package dupkey

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Duplicate locates a repeated key. Path holds the unescaped segments from the
// document root to the repeated key, including the key itself.
type Duplicate struct {
	Path []string
	Key  string
}

type frame struct {
	object    bool
	keys      map[string]struct{}
	expectKey bool
	key       string
	index     int
}

// JSON scans data token by token and returns every duplicated key. Syntax
// errors are returned as-is.
func JSON(data []byte) ([]Duplicate, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  []Duplicate
		stack []*frame
	)
	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}
	// valueStarted advances the enclosing array index.
	valueStarted := func() {
		if t := top(); t != nil && !t.object {
			t.index++
		}
	}
	// valueDone re-arms the enclosing object for its next key.
	valueDone := func() {
		if t := top(); t != nil && t.object {
			t.expectKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return dups, nil
		}
		if err != nil {
			return dups, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				valueStarted()
				stack = append(stack, &frame{object: true, keys: map[string]struct{}{}, expectKey: true})
			case '[':
				valueStarted()
				stack = append(stack, &frame{index: -1})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if t := top(); t != nil && t.object && t.expectKey {
				t.key = v
				t.expectKey = false
				if _, seen := t.keys[v]; seen {
					dups = append(dups, Duplicate{Path: pathOf(stack), Key: v})
				}
				t.keys[v] = struct{}{}
				continue
			}
			valueStarted()
			valueDone()
		default:
			valueStarted()
			valueDone()
		}
	}
}

func pathOf(stack []*frame) []string {
	out := make([]string, 0, len(stack))
	for _, f := range stack {
		if f.object {
			out = append(out, f.key)
		} else {
			out = append(out, strconv.Itoa(f.index))
		}
	}
	return out
}

// YAML walks a parsed node tree and returns every duplicated mapping key.
// Aliases are not followed.
func YAML(n *yaml.Node) []Duplicate {
	var dups []Duplicate
	var walk func(n *yaml.Node, path []string)
	walk = func(n *yaml.Node, path []string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.MappingNode:
			seen := map[string]struct{}{}
			for i := 0; i+1 < len(n.Content); i += 2 {
				k := n.Content[i].Value
				p := append(append([]string{}, path...), k)
				if _, ok := seen[k]; ok {
					dups = append(dups, Duplicate{Path: p, Key: k})
				}
				seen[k] = struct{}{}
				walk(n.Content[i+1], p)
			}
		case yaml.SequenceNode:
			for i, c := range n.Content {
				walk(c, append(append([]string{}, path...), strconv.Itoa(i)))
			}
		}
	}
	walk(n, nil)
	return dups
}
