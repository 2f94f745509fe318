// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrValue(id string, classes []any, kvs ...[]any) []any {
	pairs := make([]any, len(kvs))
	for i, kv := range kvs {
		pairs[i] = kv
	}
	return []any{id, classes, pairs}
}

func TestDecodeNode(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		value any
		want  Node
	}{
		{
			name:  "code block",
			kind:  KindCodeBlock,
			value: []any{attrValue("ex", []any{"python"}, []any{"linenos", "true"}), "print(1)"},
			want: &CodeBlock{
				Attr: Attr{ID: "ex", Classes: []string{"python"}, KVs: []KV{{Key: "linenos", Value: "true"}}},
				Text: "print(1)",
			},
		},
		{
			name:  "inline code",
			kind:  KindCode,
			value: []any{attrValue("", []any{}), "x := 1"},
			want:  &Code{Attr: Attr{Classes: []string{}, KVs: []KV{}}, Text: "x := 1"},
		},
		{
			name:  "header",
			kind:  KindHeader,
			value: []any{json.Number("2"), attrValue("intro", []any{"unnumbered"}), []any{Elt("Str", "Intro")}},
			want: &Header{
				Level:   2,
				Attr:    Attr{ID: "intro", Classes: []string{"unnumbered"}, KVs: []KV{}},
				Inlines: []any{Elt("Str", "Intro")},
			},
		},
		{
			name:  "unknown kind",
			kind:  "Para",
			value: []any{Elt("Str", "hello")},
			want:  &Other{Tag: "Para", Content: []any{Elt("Str", "hello")}},
		},
		{
			name: "kind without content",
			kind: "Space",
			want: &Other{Tag: "Space"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNode(tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.kind, got.Kind())
		})
	}
}

func TestDecodeNode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		value any
	}{
		{name: "code block missing attr", kind: KindCodeBlock, value: []any{"print(1)"}},
		{name: "code block not a list", kind: KindCodeBlock, value: "print(1)"},
		{name: "code text not a string", kind: KindCode, value: []any{attrValue("", []any{}), json.Number("1")}},
		{name: "attr too short", kind: KindCode, value: []any{[]any{"", []any{}}, "x"}},
		{name: "class not a string", kind: KindCode, value: []any{attrValue("", []any{json.Number("1")}), "x"}},
		{name: "attr pair too short", kind: KindCodeBlock, value: []any{attrValue("", []any{}, []any{"k"}), "x"}},
		{name: "header level not a number", kind: KindHeader, value: []any{"2", attrValue("", []any{}), []any{}}},
		{name: "header missing inlines", kind: KindHeader, value: []any{json.Number("1"), attrValue("", []any{})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNode(tt.kind, tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedNode)
		})
	}
}

func TestNodeElement_RoundTrip(t *testing.T) {
	value := []any{attrValue("ex", []any{"go", "numbered"}, []any{"a", "1"}), "fmt.Println()"}

	node, err := DecodeNode(KindCodeBlock, value)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"t": KindCodeBlock, "c": value}, node.Element())
}

func TestAttrAppendClass(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "a"
	a := Attr{Classes: base}

	b := a.AppendClass("fragile")
	c := a.AppendClass("other")

	assert.Equal(t, []string{"a"}, a.Classes)
	assert.Equal(t, []string{"a", "fragile"}, b.Classes)
	assert.Equal(t, []string{"a", "other"}, c.Classes)
}

func TestElt(t *testing.T) {
	assert.Equal(t, map[string]any{"t": "Space"}, Elt("Space"))
	assert.Equal(t, map[string]any{"t": "Str", "c": "x"}, Elt("Str", "x"))
	assert.Equal(t, map[string]any{"t": "RawBlock", "c": []any{"latex", `\par`}}, RawBlock("latex", `\par`))
	assert.Equal(t, map[string]any{"t": "RawInline", "c": []any{"tex", "~"}}, RawInline("tex", "~"))
}
