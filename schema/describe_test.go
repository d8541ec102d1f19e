package schema_test

import (
	"errors"
	"reflect"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/qremis/schema"
)

func TestDescribe_NestsRecordFields(t *testing.T) {
	reg := sampleRegistry(t)
	got, err := schema.Describe(reg, "Characteristics")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	want := schema.Description{
		"compositionLevel": {Type: "string"},
		"note":             {Repeatable: true, Type: "string"},
		"fixity": {
			Repeatable: true,
			Type:       "Fixity",
			Spec: schema.Description{
				"messageDigestAlgorithm":  {Mandatory: true, Type: "string"},
				"messageDigest":           {Mandatory: true, Type: "string"},
				"messageDigestOriginator": {Type: "string"},
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("description mismatch\n got=%#v\nwant=%#v", got, want)
	}
}

func TestDescribe_SharedTypeIsNotACycle(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("Id").Field("value").Mandatory()
	b.Type("Left").Field("id").Of("Id")
	b.Type("Right").Field("id").Of("Id")
	b.Type("Root").Field("left").Of("Left").Field("right").Of("Right")
	reg := b.MustBuild()

	d, err := schema.Describe(reg, "Root")
	if err != nil {
		t.Fatalf("diamond-shaped schema must describe: %v", err)
	}
	if d["left"].Spec["id"].Spec["value"].Type != "string" || d["right"].Spec["id"].Spec["value"].Type != "string" {
		t.Fatalf("shared type not described on both branches: %#v", d)
	}
}

func TestDescribe_DetectsCycle(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("A").Field("b").Of("B")
	b.Type("B").Field("c").Of("C").Field("leaf")
	b.Type("C").Field("a").Of("A")
	reg := b.MustBuild()

	_, err := schema.Describe(reg, "A")
	var cyc *schema.CyclicSchemaError
	if !errors.As(err, &cyc) {
		t.Fatalf("expected CyclicSchemaError, got %v", err)
	}
	if want := []schema.TypeName{"A", "B", "C", "A"}; !reflect.DeepEqual(cyc.Path, want) {
		t.Fatalf("unexpected cycle path: %v", cyc.Path)
	}
	if cyc.Code() != schema.CodeCyclicSchema {
		t.Fatalf("unexpected code %q", cyc.Code())
	}
}

func TestDescribe_SelfReference(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("Node").Field("child").Of("Node").Repeatable()
	reg := b.MustBuild()

	_, err := schema.Describe(reg, "Node")
	var cyc *schema.CyclicSchemaError
	if !errors.As(err, &cyc) || !reflect.DeepEqual(cyc.Path, []schema.TypeName{"Node", "Node"}) {
		t.Fatalf("expected self cycle, got %v", err)
	}
}

func TestDescribe_UnknownRoot(t *testing.T) {
	reg := sampleRegistry(t)
	if _, err := schema.Describe(reg, "Missing"); !errors.Is(err, schema.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestDescribe_EncodesSpecForEveryRecordField(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("Object").
		Field("category").Mandatory().
		Field("extension").Of("Extension").Repeatable()
	b.Type("Extension")
	d, err := schema.Describe(b.MustBuild(), "Object")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	want := `{"category":{"repeatable":false,"mandatory":true,"type":"string"},` +
		`"extension":{"repeatable":true,"mandatory":false,"type":"Extension","spec":{}}}`
	if string(data) != want {
		t.Fatalf("json\n got=%s\nwant=%s", data, want)
	}

	y, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var back map[string]map[string]any
	if err := yaml.Unmarshal(y, &back); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if spec, ok := back["extension"]["spec"].(map[string]any); !ok || len(spec) != 0 {
		t.Fatalf("yaml extension spec = %v\n%s", spec, y)
	}
	if _, ok := back["category"]["spec"]; ok {
		t.Fatalf("primitive field must not carry spec:\n%s", y)
	}
}
