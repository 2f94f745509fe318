// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package minted

import (
	"strings"

	"github.com/pdiddy/pandoc-minted/internal/pandoc"
	"github.com/pdiddy/pandoc-minted/pkg/types"
)

// UnpackCode reduces a code node to its contents, language, and minted
// attribute string. The language is the node's first class, or language
// when the node has none.
func UnpackCode(attr pandoc.Attr, contents string, language *string) types.Code {
	if len(attr.Classes) > 0 {
		language = types.StringPtr(attr.Classes[0])
	}

	pairs := make([]string, len(attr.KVs))
	for i, kv := range attr.KVs {
		pairs[i] = kv.Key + "=" + kv.Value
	}

	return types.Code{
		Contents:   contents,
		Language:   language,
		Attributes: strings.Join(pairs, ", "),
	}
}
