// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package minted implements the pandoc filters that typeset code with the
// LaTeX minted package and mark beamer frames fragile.
package minted

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/pandoc-minted/internal/pandoc"
	"github.com/pdiddy/pandoc-minted/pkg/types"
)

// rawFormat is the raw-node format minted output is tagged with.
const rawFormat = "latex"

// ErrMissingLanguage reports a code node for which no minted language
// could be resolved.
var ErrMissingLanguage = errors.New("no minted language")

var (
	blockTemplate = mustTemplate("block",
		"\\begin{minted}[autogobble,breaklines,<<.attributes>>]{<<.language>>}\n<<.contents>>\n\\end{minted}")
	inlineTemplate = mustTemplate("inline",
		"\\mintinline[autogobble,breaklines,<<.attributes>>]{<<.language>>}{<<.contents>>}")
)

// mustTemplate parses a minted template. Placeholders use << >> so the
// LaTeX braces need no quoting.
func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Delims("<<", ">>").Option("missingkey=error").Parse(text))
}

// Filters returns the filters in the order they must run.
func Filters() []pandoc.Filter {
	return []pandoc.Filter{
		{Name: "fragile", Action: Fragile},
		{Name: "minted", Action: Minted},
	}
}

// Minted rewrites CodeBlock and Code nodes into raw LaTeX minted markup when
// format is latex or beamer. Every other node, and every node under another
// format, passes through.
func Minted(kind string, value any, format string, meta pandoc.Meta) (any, error) {
	if format != string(types.OutputLaTeX) && format != string(types.OutputBeamer) {
		return nil, nil
	}
	if kind != pandoc.KindCodeBlock && kind != pandoc.KindCode {
		return nil, nil
	}

	node, err := pandoc.DecodeNode(kind, value)
	if err != nil {
		return nil, err
	}

	settings := UnpackMetadata(meta)
	switch n := node.(type) {
	case *pandoc.CodeBlock:
		text, err := render(blockTemplate, UnpackCode(n.Attr, n.Text, settings.Language))
		if err != nil {
			return nil, err
		}
		return pandoc.RawBlock(rawFormat, text), nil
	case *pandoc.Code:
		text, err := render(inlineTemplate, UnpackCode(n.Attr, n.Text, settings.Language))
		if err != nil {
			return nil, err
		}
		return pandoc.RawInline(rawFormat, text), nil
	default:
		return nil, nil
	}
}

// render substitutes code into tmpl. Values are inserted verbatim; the
// contents are not escaped for LaTeX.
func render(tmpl *template.Template, code types.Code) (string, error) {
	if code.Language == nil {
		return "", fmt.Errorf("%w: set a class on the code or pandoc-minted.language in the metadata", ErrMissingLanguage)
	}
	data := map[string]string{
		"contents":   code.Contents,
		"language":   *code.Language,
		"attributes": code.Attributes,
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
