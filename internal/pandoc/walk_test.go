// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upcase replaces every Str with its upper-cased text.
func upcase(kind string, value any, _ string, _ Meta) (any, error) {
	if kind != "Str" {
		return nil, nil
	}
	return Elt("Str", strings.ToUpper(value.(string))), nil
}

func TestWalk_ReplacesNested(t *testing.T) {
	tree := []any{
		Elt("Para", []any{Elt("Str", "hello"), Elt("Space"), Elt("Emph", []any{Elt("Str", "world")})}),
	}

	got, err := Walk(tree, upcase, "", Meta{})
	require.NoError(t, err)

	want := []any{
		Elt("Para", []any{Elt("Str", "HELLO"), Elt("Space"), Elt("Emph", []any{Elt("Str", "WORLD")})}),
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "hello", tree[0].(map[string]any)["c"].([]any)[0].(map[string]any)["c"], "input must not be modified")
}

func TestWalk_Splice(t *testing.T) {
	dropSpaces := func(kind string, value any, _ string, _ Meta) (any, error) {
		switch kind {
		case "Space":
			return []any{}, nil
		case "Str":
			return []any{Elt("Str", value), Elt("Str", value)}, nil
		}
		return nil, nil
	}

	got, err := Walk([]any{Elt("Str", "a"), Elt("Space"), Elt("Str", "b")}, dropSpaces, "", Meta{})
	require.NoError(t, err)

	assert.Equal(t, []any{Elt("Str", "a"), Elt("Str", "a"), Elt("Str", "b"), Elt("Str", "b")}, got)
}

func TestWalk_RecursesIntoReplacement(t *testing.T) {
	wrap := func(kind string, value any, _ string, _ Meta) (any, error) {
		if kind == "Code" {
			return Elt("Emph", []any{Elt("Str", "code")}), nil
		}
		return upcase(kind, value, "", nil)
	}

	got, err := Walk([]any{Elt("Code", []any{attrValue("", []any{}), "x"})}, wrap, "", Meta{})
	require.NoError(t, err)

	assert.Equal(t, []any{Elt("Emph", []any{Elt("Str", "CODE")})}, got)
}

func TestWalk_PassesFormatAndMeta(t *testing.T) {
	meta := Meta{"title": Elt("MetaInlines", []any{Elt("Str", "T")})}
	var seen []string
	record := func(kind string, _ any, format string, m Meta) (any, error) {
		seen = append(seen, kind+"/"+format)
		assert.Equal(t, meta, m)
		return nil, nil
	}

	_, err := Walk([]any{Elt("Para", []any{Elt("Str", "x")})}, record, "beamer", meta)
	require.NoError(t, err)

	assert.Equal(t, []string{"Para/beamer", "Str/beamer"}, seen)
}

func TestWalk_Error(t *testing.T) {
	boom := errors.New("boom")
	fail := func(kind string, _ any, _ string, _ Meta) (any, error) {
		if kind == "Str" {
			return nil, boom
		}
		return nil, nil
	}

	_, err := Walk(map[string]any{"blocks": []any{Elt("Para", []any{Elt("Str", "x")})}}, fail, "", Meta{})
	assert.ErrorIs(t, err, boom)
}
