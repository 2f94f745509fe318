// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLanguage is the minted lexer used when a document carries no
// pandoc-minted metadata block.
const DefaultLanguage = "text"

// Settings holds the filter options read from a document's pandoc-minted
// metadata block.
type Settings struct {
	// Language is the default minted lexer for code without a class.
	// Nil means the metadata block exists but names no usable language.
	Language *string `json:"language" yaml:"language"`
}

// Code is a code node reduced to the three values the minted templates need.
type Code struct {
	// Contents is the literal code text, inserted without escaping.
	Contents string `json:"contents" yaml:"contents"`

	// Language is the first class of the node, or the default language.
	Language *string `json:"language" yaml:"language"`

	// Attributes renders the node's key-value pairs as "k=v, k=v".
	Attributes string `json:"attributes" yaml:"attributes"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
