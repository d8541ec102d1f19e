package store

import (
	"reflect"
	"testing"
)

func TestStore_ScalarOverwrite(t *testing.T) {
	s := New()
	s.Put("a", "x")
	s.Put("a", "y")
	v, ok := s.Scalar("a")
	if !ok || v != "y" {
		t.Fatalf("expected y, got %v (ok=%v)", v, ok)
	}
	if _, ok := s.Seq("a"); ok {
		t.Fatalf("scalar slot must not read as a sequence")
	}
}

func TestStore_AppendPreservesOrder(t *testing.T) {
	s := New()
	s.Append("n", "1")
	s.Append("n", "2", "3")
	got, ok := s.Seq("n")
	if !ok || !reflect.DeepEqual(got, []any{"1", "2", "3"}) {
		t.Fatalf("unexpected sequence: %v", got)
	}
	// the returned slice is a copy
	got[0] = "z"
	again, _ := s.Seq("n")
	if again[0] != "1" {
		t.Fatalf("store was mutated through a returned slice")
	}
}

func TestStore_AppendNothingKeepsAbsent(t *testing.T) {
	s := New()
	s.Append("n")
	if s.Has("n") {
		t.Fatalf("empty append must not create a slot")
	}
}

func TestStore_RemoveAtToAbsence(t *testing.T) {
	s := New()
	s.Append("n", "a", "b")
	if !s.RemoveAt("n", 0) {
		t.Fatalf("expected removal")
	}
	got, _ := s.Seq("n")
	if !reflect.DeepEqual(got, []any{"b"}) {
		t.Fatalf("unexpected sequence after removal: %v", got)
	}
	if !s.RemoveAt("n", 0) {
		t.Fatalf("expected removal of last element")
	}
	if s.Has("n") {
		t.Fatalf("emptied sequence must revert to absent")
	}
}

func TestStore_RemoveAtOutOfRange(t *testing.T) {
	s := New()
	s.Append("n", "a")
	for _, i := range []int{-1, 1, 5} {
		if s.RemoveAt("n", i) {
			t.Fatalf("index %d: expected no removal", i)
		}
	}
	if s.SeqLen("n") != 1 {
		t.Fatalf("failed removal must not change the sequence")
	}
	if s.RemoveAt("missing", 0) {
		t.Fatalf("removal on absent slot must fail")
	}
}

func TestStore_Remove(t *testing.T) {
	s := New()
	s.Put("a", "x")
	if !s.Remove("a") || s.Has("a") || s.Len() != 0 {
		t.Fatalf("expected slot removed")
	}
	if s.Remove("a") {
		t.Fatalf("second removal must report false")
	}
}
