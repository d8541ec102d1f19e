package qremis_test

import (
	"testing"

	json "github.com/goccy/go-json"

	qremis "github.com/reoring/qremis"
	"github.com/reoring/qremis/schema"
)

func TestDescribeSchema_Root(t *testing.T) {
	d, err := qremis.DescribeSchema(qremis.TypeRoot)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	root, ok := d["qremis"]
	if !ok || !root.Mandatory || root.Repeatable || root.Type != "Qremis" {
		t.Fatalf("unexpected root description: %+v", root)
	}
	obj := root.Spec["object"]
	if obj.Type != "Object" || !obj.Repeatable || obj.Mandatory {
		t.Fatalf("unexpected object description: %+v", obj)
	}
	// three levels down to a primitive leaf
	digest := obj.Spec["objectCharacteristics"].Spec["fixity"].Spec["messageDigest"]
	if digest.Type != "string" || !digest.Mandatory || digest.Spec != nil {
		t.Fatalf("unexpected leaf description: %+v", digest)
	}
	if len(root.Spec) != 5 {
		t.Fatalf("Qremis should describe 5 fields, got %d", len(root.Spec))
	}
}

// Every record-kind field carries a nested description of its type, and every
// primitive field carries none.
func TestDescribeSchema_DepthMatchesRegistry(t *testing.T) {
	reg := qremis.DefaultRegistry()
	d, err := qremis.DescribeSchema(qremis.TypeRoot)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	var walk func(typ schema.TypeName, d schema.Description)
	walk = func(typ schema.TypeName, d schema.Description) {
		e := reg.MustLookup(typ)
		if len(d) != e.Len() {
			t.Fatalf("%s: %d described fields, want %d", typ, len(d), e.Len())
		}
		for _, f := range e.Fields() {
			fd := d[f.Name]
			if fd.Repeatable != f.Repeatable || fd.Mandatory != f.Mandatory || fd.Type != f.TypeName() {
				t.Fatalf("%s.%s: description %+v does not match %+v", typ, f.Name, fd, f)
			}
			if f.Kind == schema.KindString {
				if fd.Spec != nil {
					t.Fatalf("%s.%s: primitive field has a nested spec", typ, f.Name)
				}
				continue
			}
			walk(f.Ref, fd.Spec)
		}
	}
	walk(qremis.TypeRoot, d)
}

func TestJSONSchema_DefaultRegistry(t *testing.T) {
	s, err := qremis.JSONSchema(qremis.TypeRoot)
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if s.Ref != "#/$defs/Root" {
		t.Fatalf("unexpected root ref %q", s.Ref)
	}
	fx := s.Defs["Fixity"]
	if fx == nil || len(fx.Required) != 2 || fx.Properties["messageDigest"].Type != "string" {
		t.Fatalf("unexpected Fixity def: %+v", fx)
	}
	obj := s.Defs["Object"]
	if p := obj.Properties["objectIdentifier"]; p.Type != "array" || p.Items.Ref != "#/$defs/ObjectIdentifier" {
		t.Fatalf("unexpected objectIdentifier property: %+v", p)
	}
}

func TestDescribeSchema_ExtensionFieldKeepsSpec(t *testing.T) {
	d, err := qremis.DescribeSchema(qremis.TypeObject)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	data, err := json.Marshal(d["objectExtension"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"repeatable":true,"mandatory":false,"type":"ObjectExtension","spec":{}}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}
