package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("ja")
	defer SetLanguage("en")
	if msg := T("invalid_type", nil); msg != "型が不正です" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
	if msg := T("conversion_input", nil); msg == "conversion_input" {
		t.Fatalf("expected japanese message for conversion_input, got %q", msg)
	}
}

func TestTranslator_EveryCodeHasBothLanguages(t *testing.T) {
	for code := range dictionaries["en"] {
		if _, ok := dictionaries["ja"][code]; !ok {
			t.Fatalf("ja dictionary misses %q", code)
		}
	}
	if len(dictionaries["en"]) != len(dictionaries["ja"]) {
		t.Fatalf("dictionaries differ in size: en=%d ja=%d", len(dictionaries["en"]), len(dictionaries["ja"]))
	}
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	SetLanguage("fr")
	defer SetLanguage("en")
	if msg := T("invalid_enum", nil); msg != "value is not one of the allowed members" {
		t.Fatalf("unknown language should fall back to en, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown code should echo the code, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, data map[string]string) string { return "X:" + code + ":" + data["got"] }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("required", map[string]string{"got": "null"}); msg != "X:required:null" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("nil translator should restore en, got %q", msg)
	}
}
