package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("unknown_field", nil); msg == "unknown_field" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unknown_field", nil); msg == "unknown field" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("type_mismatch", map[string]string{"expected": "string", "actual": "Fixity"})
	if got != "type mismatch (expected string, got Fixity)" {
		t.Fatalf("unexpected message: %q", got)
	}
	// unknown codes fall back to the code itself
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code fallback, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	if got := T("field_not_set", nil); got != "X:field_not_set" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("field_not_set", nil); got != "field not set" {
		t.Fatalf("expected reset to en, got %q", got)
	}
}
