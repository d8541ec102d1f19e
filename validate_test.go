package qremis_test

import (
	"strings"
	"testing"

	qremis "github.com/reoring/qremis"
	"github.com/reoring/qremis/schema"
)

func TestValidate_NestedDeletionReportsPath(t *testing.T) {
	obj := sampleObject(t)
	ocs, _ := obj.GetRecords("objectCharacteristics")
	fixities, _ := ocs[0].GetRecords("fixity")
	if err := fixities[0].Delete("messageDigestAlgorithm"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := obj.Delete("objectCategory"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	iss, ok := qremis.AsIssues(qremis.Validate(obj))
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", iss)
	}
	if iss[0].Path != "/objectCategory" || iss[1].Path != "/objectCharacteristics/0/fixity/0/messageDigestAlgorithm" {
		t.Fatalf("unexpected paths: %s, %s", iss[0].Path, iss[1].Path)
	}
	for _, it := range iss {
		if it.Code != qremis.CodeMissingMandatory {
			t.Fatalf("unexpected code %q", it.Code)
		}
	}
	if got := iss.Error(); !strings.HasPrefix(got, "missing_mandatory at /objectCategory; ") {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := qremis.Validate(sampleObject(t)); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}
	if err := qremis.Validate(nil); err == nil {
		t.Fatalf("nil record must not validate")
	}
}

func TestValidate_InstanceCycle(t *testing.T) {
	b := schema.NewBuilder()
	b.Type("Node").Field("name").Mandatory().Field("child").Of("Node").Repeatable()
	reg := b.MustBuild()

	n, err := qremis.NewIn(reg, "Node", nil, qremis.Values{"name": "a"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := n.Add("child", n); err != nil {
		t.Fatalf("add: %v", err)
	}
	iss, ok := qremis.AsIssues(qremis.Validate(n))
	if !ok || len(iss) != 1 || iss[0].Code != qremis.CodeCyclicSchema || iss[0].Path != "/child/0" {
		t.Fatalf("expected cycle issue at /child/0, got %v", iss)
	}
}

func TestNewIn_UnknownType(t *testing.T) {
	if _, err := qremis.New("Nope", nil, qremis.Values{"a": "b"}); err == nil || !strings.Contains(err.Error(), "unknown record type") {
		t.Fatalf("expected unknown record type error, got %v", err)
	}
}
