// Package i18n localizes Issue messages. English and Japanese are built in.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data carries optional placeholders ("expected", "got", "key") that the
// message may embed as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":     "invalid type",
		"required":         "required property missing",
		"invalid_enum":     "value is not one of the allowed members",
		"conversion_input": "conversion input rejected",
		"union_no_match":   "no alternative matched",
		"duplicate_key":    "duplicate key",
		"parse_error":      "parse error",
		"truncated":        "truncated",
	},
	"ja": {
		"invalid_type":     "型が不正です",
		"required":         "必須プロパティが不足しています",
		"invalid_enum":     "許可された値ではありません",
		"conversion_input": "変換元の値が不正です",
		"union_no_match":   "いずれの候補にも一致しません",
		"duplicate_key":    "キーが重複しています",
		"parse_error":      "解析エラー",
		"truncated":        "打ち切られました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja"). Unknown
// languages fall back to English.
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// Languages lists the built-in languages.
func Languages() []string { return []string{"en", "ja"} }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
