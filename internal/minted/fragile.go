// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package minted

import (
	"github.com/pdiddy/pandoc-minted/internal/pandoc"
	"github.com/pdiddy/pandoc-minted/pkg/types"
)

// fragileClass makes beamer build the frame with fragile content, which
// minted's verbatim environments require.
const fragileClass = "fragile"

// Fragile adds the fragile class to every Header when format is beamer.
// The returned Header is a new element; value is not modified.
func Fragile(kind string, value any, format string, _ pandoc.Meta) (any, error) {
	if format != string(types.OutputBeamer) || kind != pandoc.KindHeader {
		return nil, nil
	}

	node, err := pandoc.DecodeNode(kind, value)
	if err != nil {
		return nil, err
	}
	h := node.(*pandoc.Header)

	marked := &pandoc.Header{
		Level:   h.Level,
		Attr:    h.Attr.AppendClass(fragileClass),
		Inlines: h.Inlines,
	}
	return marked.Element(), nil
}
