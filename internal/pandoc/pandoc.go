// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc reads, walks, and writes the pandoc JSON AST.
// Elements are kept as decoded JSON (map[string]any, []any, string,
// json.Number, bool, nil) so that nodes no filter recognizes round-trip
// untouched. Known node kinds can be decoded into typed variants with
// DecodeNode.
package pandoc

import "errors"

var (
	// ErrMalformedNode reports a node whose value does not have the shape
	// the pandoc AST defines for its kind.
	ErrMalformedNode = errors.New("malformed node")

	// ErrMalformedDocument reports input that is not a pandoc JSON document.
	ErrMalformedDocument = errors.New("malformed document")
)

// Meta is the document metadata: a map from keys to tagged meta values
// such as {"t": "MetaMap", "c": {...}}.
type Meta map[string]any

// Elt builds a tagged AST element. No contents omits "c", one content is
// stored as is, and several are stored as a list.
func Elt(tag string, contents ...any) map[string]any {
	switch len(contents) {
	case 0:
		return map[string]any{"t": tag}
	case 1:
		return map[string]any{"t": tag, "c": contents[0]}
	default:
		return map[string]any{"t": tag, "c": contents}
	}
}

// RawBlock returns a block of raw text for the given output format.
func RawBlock(format, text string) map[string]any {
	return Elt("RawBlock", format, text)
}

// RawInline returns an inline of raw text for the given output format.
func RawInline(format, text string) map[string]any {
	return Elt("RawInline", format, text)
}

// Tagged splits a tagged value into its tag and content. It reports false
// when v is not an object with a string "t" key.
func Tagged(v any) (tag string, content any, ok bool) {
	m, isMap := v.(map[string]any)
	if !isMap {
		return "", nil, false
	}
	tag, ok = m["t"].(string)
	if !ok {
		return "", nil, false
	}
	return tag, m["c"], true
}
