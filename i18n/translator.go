package i18n

import "strings"

// Translator retrieves localized messages for result and error codes.
// data provides optional values substituted into "{name}" placeholders (for
// example "tag" or "target").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogue = map[string]map[string]string{
	"en": {
		"unsupported_comparison": "cannot structurally compare user-defined kind '{tag}'",
		"unresolved_reference":   "cannot locate referenced id '{target}'",
		"duplicate_key":          "duplicate key '{key}'",
		"invalid_document":       "invalid schema document: {reason}",
		"result_true":            "assignable",
		"result_false":           "not assignable",
		"result_union":           "ambiguous (depends on an unconstrained parameter)",
	},
	"ja": {
		"unsupported_comparison": "ユーザー定義の種別 '{tag}' は構造比較できません",
		"unresolved_reference":   "参照先の ID '{target}' が見つかりません",
		"duplicate_key":          "キー '{key}' が重複しています",
		"invalid_document":       "スキーマ文書が不正です: {reason}",
		"result_true":            "代入可能",
		"result_false":           "代入不可",
		"result_union":           "曖昧 (未束縛のパラメータに依存)",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalogue[t.lang][code]
	if !ok {
		msg, ok = catalogue["en"][code]
	}
	if !ok {
		return code
	}
	return expand(msg, data)
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 {
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
