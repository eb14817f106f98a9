// Package rendering provides functionality to render LaTeX resumes from templates.
package rendering

import (
	"strings"
	"unicode/utf8"
)

// latexSpecialChars maps every character that needs escaping to its LaTeX-safe form.
// Each input character is looked up once; replacement text is never re-escaped.
var latexSpecialChars = map[rune]string{
	'&':      `\&`,
	'%':      `\%`,
	'$':      `\$`,
	'#':      `\#`,
	'_':      `\_`,
	'{':      `\{`,
	'}':      `\}`,
	'~':      `\textasciitilde{}`,
	'^':      `\^{}`,
	'\\':     `\textbackslash{}`,
	'\n':     "\\newline%\n",
	'-':      `{-}`,
	'\u00a0': `~`,
	'[':      `{[}`,
	']':      `{]}`,
}

// EscapeLaTeX escapes special LaTeX characters in text.
// Characters outside the table, including invalid UTF-8 bytes, are copied unchanged.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if replacement, ok := latexSpecialChars[r]; ok {
			result.WriteString(replacement)
		} else {
			result.WriteString(text[i : i+size])
		}
		i += size
	}

	return result.String()
}

// Escape returns a copy of v with every string leaf passed through EscapeLaTeX.
// Map keys are not escaped; map and list order is preserved; scalars are returned as is.
func Escape(v Value) Value {
	switch v.kind {
	case KindMap:
		fields := make([]Field, len(v.fields))
		for i, field := range v.fields {
			fields[i] = Field{Key: field.Key, Value: Escape(field.Value)}
		}
		return Value{kind: KindMap, fields: fields}
	case KindList:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Escape(item)
		}
		return Value{kind: KindList, items: items}
	case KindString:
		return String(EscapeLaTeX(v.str))
	default:
		return v
	}
}
