// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"encoding/json"
	"fmt"
	"io"
)

// Filter is a named Action applied over a whole document.
type Filter struct {
	Name   string
	Action Action
}

// FilterResult counts the elements one filter replaced.
type FilterResult struct {
	Name      string
	Rewritten int
}

// Summary holds the outcome of applying filters to a document, in the
// order the filters ran.
type Summary struct {
	Filters []FilterResult
}

// Total returns the number of elements rewritten by all filters.
func (s Summary) Total() int {
	n := 0
	for _, f := range s.Filters {
		n += f.Rewritten
	}
	return n
}

// Document is a decoded pandoc JSON document.
type Document struct {
	// Root is the whole decoded tree.
	Root any
	// Meta is the document metadata as read from the input. Filters see
	// this value on every call, whatever earlier filters did to the tree.
	Meta Meta
}

// ReadDocument decodes a pandoc JSON document. It accepts the object form
// written by pandoc 1.18 and later ({"pandoc-api-version", "meta",
// "blocks"}) and the older [{"unMeta": ...}, [blocks]] form. Numbers are
// kept as json.Number so they are written back verbatim.
func ReadDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrMalformedDocument, err)
	}

	meta, err := documentMeta(root)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root, Meta: meta}, nil
}

func documentMeta(root any) (Meta, error) {
	switch doc := root.(type) {
	case map[string]any:
		if _, ok := doc["blocks"]; !ok {
			return nil, fmt.Errorf("%w: object has no \"blocks\" key", ErrMalformedDocument)
		}
		return metaMap(doc["meta"])
	case []any:
		if len(doc) != 2 {
			return nil, fmt.Errorf("%w: legacy document must have 2 elements, got %d", ErrMalformedDocument, len(doc))
		}
		head, ok := doc[0].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: legacy document header is not an object", ErrMalformedDocument)
		}
		return metaMap(head["unMeta"])
	default:
		return nil, fmt.Errorf("%w: top level is %T", ErrMalformedDocument, root)
	}
}

func metaMap(v any) (Meta, error) {
	if v == nil {
		return Meta{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: metadata is not an object", ErrMalformedDocument)
	}
	return Meta(m), nil
}

// Apply runs each filter over the whole tree in order, replacing Root with
// the result. Every filter is handed the metadata read from the input. On
// error Root is left as it was before the failing filter.
func (d *Document) Apply(format string, filters ...Filter) (Summary, error) {
	var summary Summary
	for _, f := range filters {
		result := FilterResult{Name: f.Name}
		counted := func(kind string, value any, format string, meta Meta) (any, error) {
			res, err := f.Action(kind, value, format, meta)
			if err == nil && res != nil {
				result.Rewritten++
			}
			return res, err
		}

		root, err := Walk(d.Root, counted, format, d.Meta)
		if err != nil {
			return summary, fmt.Errorf("filter %s: %w", f.Name, err)
		}
		d.Root = root
		summary.Filters = append(summary.Filters, result)
	}
	return summary, nil
}

// Write encodes the document as JSON.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.Root); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// Run reads a document from r, applies filters in order for the given
// output format, and writes the result to w. Nothing is written when
// reading or filtering fails.
func Run(r io.Reader, w io.Writer, format string, filters ...Filter) (Summary, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return Summary{}, err
	}
	summary, err := doc.Apply(format, filters...)
	if err != nil {
		return summary, err
	}
	return summary, doc.Write(w)
}
