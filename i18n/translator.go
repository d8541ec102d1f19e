package i18n

import "strings"

// Translator retrieves localized messages for error and issue codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "empty_construction":
			msg = "空の要素は作成できません"
		case "unknown_field":
			msg = "未知のフィールドです"
		case "missing_mandatory":
			msg = "必須フィールドが不足しています: {fields}"
		case "type_mismatch":
			msg = "型が不正です (期待: {expected}, 実際: {actual})"
		case "field_not_set":
			msg = "フィールドが設定されていません"
		case "index_out_of_range":
			msg = "インデックスが範囲外です"
		case "not_repeatable":
			msg = "繰り返し可能なフィールドではありません"
		case "cyclic_schema":
			msg = "スキーマが循環しています: {path}"
		case "parse_error":
			msg = "解析エラー"
		case "duplicate_key":
			msg = "キーが重複しています: {key}"
		}
	default: // "en"
		switch code {
		case "empty_construction":
			msg = "no empty elements"
		case "unknown_field":
			msg = "unknown field"
		case "missing_mandatory":
			msg = "mandatory fields missing: {fields}"
		case "type_mismatch":
			msg = "type mismatch (expected {expected}, got {actual})"
		case "field_not_set":
			msg = "field not set"
		case "index_out_of_range":
			msg = "index out of range"
		case "not_repeatable":
			msg = "field is not repeatable"
		case "cyclic_schema":
			msg = "cyclic schema: {path}"
		case "parse_error":
			msg = "parse error"
		case "duplicate_key":
			msg = "duplicate key: {key}"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {key} placeholders with entries from data. Unknown
// placeholders are left as-is.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
