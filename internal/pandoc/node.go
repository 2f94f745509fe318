// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"encoding/json"
	"fmt"
	"math"
)

// Node kinds with typed variants.
const (
	KindHeader    = "Header"
	KindCodeBlock = "CodeBlock"
	KindCode      = "Code"
)

// KV is one key-value attribute pair.
type KV struct {
	Key   string
	Value string
}

// Attr is an element's (identifier, classes, key-value pairs) triple.
type Attr struct {
	ID      string
	Classes []string
	KVs     []KV
}

// AppendClass returns a copy of a with class c added after the existing
// classes. The receiver's class slice is not shared with the result.
func (a Attr) AppendClass(c string) Attr {
	classes := make([]string, 0, len(a.Classes)+1)
	classes = append(classes, a.Classes...)
	a.Classes = append(classes, c)
	return a
}

// Element encodes a as its JSON triple.
func (a Attr) Element() []any {
	classes := make([]any, len(a.Classes))
	for i, c := range a.Classes {
		classes[i] = c
	}
	kvs := make([]any, len(a.KVs))
	for i, kv := range a.KVs {
		kvs[i] = []any{kv.Key, kv.Value}
	}
	return []any{a.ID, classes, kvs}
}

// DecodeAttr decodes an [id, [classes...], [[key, value]...]] triple.
func DecodeAttr(v any) (Attr, error) {
	triple, ok := v.([]any)
	if !ok || len(triple) != 3 {
		return Attr{}, fmt.Errorf("%w: attr is not an (id, classes, attributes) triple", ErrMalformedNode)
	}
	id, ok := triple[0].(string)
	if !ok {
		return Attr{}, fmt.Errorf("%w: attr id is not a string", ErrMalformedNode)
	}
	rawClasses, ok := triple[1].([]any)
	if !ok {
		return Attr{}, fmt.Errorf("%w: attr classes is not a list", ErrMalformedNode)
	}
	classes := make([]string, len(rawClasses))
	for i, c := range rawClasses {
		s, ok := c.(string)
		if !ok {
			return Attr{}, fmt.Errorf("%w: attr class %d is not a string", ErrMalformedNode, i)
		}
		classes[i] = s
	}
	rawKVs, ok := triple[2].([]any)
	if !ok {
		return Attr{}, fmt.Errorf("%w: attr key-value list is not a list", ErrMalformedNode)
	}
	kvs := make([]KV, len(rawKVs))
	for i, p := range rawKVs {
		pair, ok := p.([]any)
		if !ok || len(pair) != 2 {
			return Attr{}, fmt.Errorf("%w: attr pair %d is not a (key, value) pair", ErrMalformedNode, i)
		}
		k, kok := pair[0].(string)
		val, vok := pair[1].(string)
		if !kok || !vok {
			return Attr{}, fmt.Errorf("%w: attr pair %d is not a pair of strings", ErrMalformedNode, i)
		}
		kvs[i] = KV{Key: k, Value: val}
	}
	return Attr{ID: id, Classes: classes, KVs: kvs}, nil
}

// Node is a decoded AST node. The set of variants is closed: *Header,
// *CodeBlock, *Code, and *Other for every kind without a typed variant.
type Node interface {
	// Kind returns the node's tag.
	Kind() string
	// Element re-encodes the node as a tagged JSON element.
	Element() map[string]any
	node()
}

// Header is a section heading.
type Header struct {
	Level   int
	Attr    Attr
	Inlines []any
}

func (*Header) Kind() string { return KindHeader }
func (*Header) node()        {}
func (h *Header) Element() map[string]any {
	inlines := h.Inlines
	if inlines == nil {
		inlines = []any{}
	}
	return Elt(KindHeader, h.Level, h.Attr.Element(), inlines)
}

// CodeBlock is a block of literal code.
type CodeBlock struct {
	Attr Attr
	Text string
}

func (*CodeBlock) Kind() string { return KindCodeBlock }
func (*CodeBlock) node()        {}
func (c *CodeBlock) Element() map[string]any {
	return Elt(KindCodeBlock, c.Attr.Element(), c.Text)
}

// Code is inline literal code.
type Code struct {
	Attr Attr
	Text string
}

func (*Code) Kind() string { return KindCode }
func (*Code) node()        {}
func (c *Code) Element() map[string]any {
	return Elt(KindCode, c.Attr.Element(), c.Text)
}

// Other carries any node kind without a typed variant. Its content is
// kept opaque.
type Other struct {
	Tag     string
	Content any
}

func (o *Other) Kind() string { return o.Tag }
func (*Other) node()         {}
func (o *Other) Element() map[string]any {
	if o.Content == nil {
		return Elt(o.Tag)
	}
	return Elt(o.Tag, o.Content)
}

// DecodeNode decodes the value of a node of the given kind. Kinds without
// a typed variant decode to *Other and never fail. A value that does not
// match its kind's shape returns an error wrapping ErrMalformedNode.
func DecodeNode(kind string, value any) (Node, error) {
	switch kind {
	case KindHeader:
		return decodeHeader(value)
	case KindCodeBlock:
		attr, text, err := decodeCode(kind, value)
		if err != nil {
			return nil, err
		}
		return &CodeBlock{Attr: attr, Text: text}, nil
	case KindCode:
		attr, text, err := decodeCode(kind, value)
		if err != nil {
			return nil, err
		}
		return &Code{Attr: attr, Text: text}, nil
	default:
		return &Other{Tag: kind, Content: value}, nil
	}
}

func decodeHeader(value any) (*Header, error) {
	parts, ok := value.([]any)
	if !ok || len(parts) != 3 {
		return nil, fmt.Errorf("%w: %s: want (level, attr, inlines)", ErrMalformedNode, KindHeader)
	}
	level, err := decodeInt(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s level: %v", ErrMalformedNode, KindHeader, err)
	}
	attr, err := DecodeAttr(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KindHeader, err)
	}
	inlines, ok := parts[2].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s inlines is not a list", ErrMalformedNode, KindHeader)
	}
	return &Header{Level: level, Attr: attr, Inlines: inlines}, nil
}

func decodeCode(kind string, value any) (Attr, string, error) {
	parts, ok := value.([]any)
	if !ok || len(parts) != 2 {
		return Attr{}, "", fmt.Errorf("%w: %s: want (attr, text)", ErrMalformedNode, kind)
	}
	attr, err := DecodeAttr(parts[0])
	if err != nil {
		return Attr{}, "", fmt.Errorf("%s: %w", kind, err)
	}
	text, ok := parts[1].(string)
	if !ok {
		return Attr{}, "", fmt.Errorf("%w: %s text is not a string", ErrMalformedNode, kind)
	}
	return attr, text, nil
}

func decodeInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, err
		}
		return int(i), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%T is not a number", v)
	}
}
