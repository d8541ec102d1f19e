package schema_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/qremis/schema"
)

func sampleRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	b := schema.NewBuilder()
	b.Type("Fixity").
		Field("messageDigestAlgorithm").Mandatory().
		Field("messageDigest").Mandatory().
		Field("messageDigestOriginator")
	b.Type("Characteristics").
		Field("compositionLevel").
		Field("fixity").Of("Fixity").Repeatable().
		Field("note").Repeatable()
	b.Type("Extension")
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return reg
}

func TestBuild_EntryAccessors(t *testing.T) {
	reg := sampleRegistry(t)

	if got := reg.Types(); !reflect.DeepEqual(got, []schema.TypeName{"Fixity", "Characteristics", "Extension"}) {
		t.Fatalf("types not in declaration order: %v", got)
	}

	fx := reg.MustLookup("Fixity")
	if got := fx.Mandatory(); !reflect.DeepEqual(got, []string{"messageDigestAlgorithm", "messageDigest"}) {
		t.Fatalf("unexpected mandatory list: %v", got)
	}
	f, ok := fx.Field("messageDigestOriginator")
	if !ok || f.Mandatory || f.Repeatable || f.Kind != schema.KindString || f.TypeName() != "string" {
		t.Fatalf("unexpected field decl: %+v", f)
	}

	ch := reg.MustLookup("Characteristics")
	cf, ok := ch.FieldFor("Fixity")
	if !ok || cf.Name != "fixity" || !cf.Repeatable || cf.TypeName() != "Fixity" {
		t.Fatalf("unexpected child mapping: %+v (ok=%v)", cf, ok)
	}
	if _, ok := ch.FieldFor("Extension"); ok {
		t.Fatalf("no field holds Extension")
	}

	ext := reg.MustLookup("Extension")
	if ext.Len() != 0 || len(ext.Fields()) != 0 {
		t.Fatalf("empty type must have no fields")
	}
}

func TestBuild_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		build func(b *schema.Builder)
		want  string
	}{
		{
			name: "duplicate type",
			build: func(b *schema.Builder) {
				b.Type("A").Field("x")
				b.Type("A").Field("y")
			},
			want: `record type "A" declared twice`,
		},
		{
			name: "duplicate field",
			build: func(b *schema.Builder) {
				b.Type("A").Field("x").Field("x").Mandatory()
			},
			want: `field "x" declared twice`,
		},
		{
			name: "dangling reference",
			build: func(b *schema.Builder) {
				b.Type("A").Field("b").Of("B")
			},
			want: `unknown record type: "B"`,
		},
		{
			name: "ambiguous child type",
			build: func(b *schema.Builder) {
				b.Type("Dates").Field("startDate")
				b.Type("A").
					Field("grantDates").Of("Dates").
					Field("restrictionDates").Of("Dates")
			},
			want: `fields "grantDates" and "restrictionDates" both hold Dates`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := schema.NewBuilder()
			tc.build(b)
			reg, err := b.Build()
			if err == nil || reg != nil {
				t.Fatalf("expected build error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestBuild_DanglingRefIsUnknownType(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("A").Field("b").Of("B")
	_, err := b.Build()
	if !errors.Is(err, schema.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestMustLookup_PanicsOnUnknown(t *testing.T) {
	reg := sampleRegistry(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	reg.MustLookup("Nope")
}
