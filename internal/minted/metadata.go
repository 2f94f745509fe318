// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package minted

import (
	"github.com/pdiddy/pandoc-minted/internal/pandoc"
	"github.com/pdiddy/pandoc-minted/pkg/types"
)

// MetadataKey is the document metadata entry holding filter settings.
const MetadataKey = "pandoc-minted"

// UnpackMetadata reads the pandoc-minted settings from document metadata.
//
// Without a pandoc-minted map the language defaults to "text". When the map
// exists, the language is the text of the first inline of its language
// entry, and nil if that entry is missing or is not inline text. Malformed
// metadata never fails.
func UnpackMetadata(meta pandoc.Meta) types.Settings {
	tag, content, ok := pandoc.Tagged(meta[MetadataKey])
	if !ok || tag != "MetaMap" {
		return types.Settings{Language: types.StringPtr(types.DefaultLanguage)}
	}

	entries, _ := content.(map[string]any)
	return types.Settings{Language: firstInlineText(entries["language"])}
}

// firstInlineText returns the string content of the first inline of a
// MetaInlines value, or nil.
func firstInlineText(v any) *string {
	tag, content, ok := pandoc.Tagged(v)
	if !ok || tag != "MetaInlines" {
		return nil
	}
	inlines, ok := content.([]any)
	if !ok || len(inlines) == 0 {
		return nil
	}
	_, first, ok := pandoc.Tagged(inlines[0])
	if !ok {
		return nil
	}
	text, ok := first.(string)
	if !ok {
		return nil
	}
	return &text
}
