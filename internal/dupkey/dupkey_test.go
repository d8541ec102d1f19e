package dupkey_test

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/reoring/qremis/internal/dupkey"
)

func TestJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []dupkey.Duplicate
	}{
		{"none", `{"a":"1","b":["x",{"c":"2"}]}`, nil},
		{"top level", `{"a":"1","a":"2"}`, []dupkey.Duplicate{{Path: []string{"a"}, Key: "a"}}},
		{"nested object", `{"a":{"b":"1","b":"2"}}`, []dupkey.Duplicate{{Path: []string{"a", "b"}, Key: "b"}}},
		{"inside array", `{"x":["s",{"k":"1"},{"k":"1","k":"2"}]}`, []dupkey.Duplicate{{Path: []string{"x", "2", "k"}, Key: "k"}}},
		{"after nested value", `{"a":{"z":"1"},"b":[1,2],"a":"3"}`, []dupkey.Duplicate{{Path: []string{"a"}, Key: "a"}}},
		{"same key in siblings", `[{"a":"1"},{"a":"2"}]`, nil},
		{"string values are not keys", `{"a":"a","b":"a"}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dupkey.JSON([]byte(tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestYAML(t *testing.T) {
	src := "a: 1\nb:\n  - c: 1\n    c: 2\na: 3\n"
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := dupkey.YAML(&n)
	want := []dupkey.Duplicate{
		{Path: []string{"b", "0", "c"}, Key: "c"},
		{Path: []string{"a"}, Key: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
