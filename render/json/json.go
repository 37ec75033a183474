// Package json re-serializes trees as JSON, preserving entry order and
// the source number literals.
package json

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/sonnes/leafwalk/core"
)

// Renderer re-encodes a tree as a JSON document.
type Renderer struct {
	// Indent is the per-level indent string. Empty means compact output.
	Indent string
}

// New creates a JSON Renderer with two-space indentation.
func New() *Renderer {
	return &Renderer{Indent: "  "}
}

// Render writes t.Root as JSON to w, followed by a newline.
func (r *Renderer) Render(w io.Writer, t *core.Tree) error {
	var opts []jsontext.Options
	if r.Indent != "" {
		opts = append(opts, jsontext.WithIndent(r.Indent))
	}
	enc := jsontext.NewEncoder(w, opts...)
	if err := json.MarshalEncode(enc, t.Root, json.WithMarshalers(valueMarshalers())); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

// valueMarshalers returns marshalers for the tree value types. Nested
// values marshaled with MarshalEncode inherit them, so documents and
// arrays re-encode recursively through the same path.
func valueMarshalers() *json.Marshalers {
	return json.JoinMarshalers(
		json.MarshalToFunc(marshalDocument),
		json.MarshalToFunc(marshalArray),
		json.MarshalToFunc(marshalNumber),
	)
}

func marshalDocument(enc *jsontext.Encoder, doc core.Document) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, e := range doc {
		if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, e.Value); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func marshalArray(enc *jsontext.Encoder, arr core.Array) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for _, v := range arr {
		if err := json.MarshalEncode(enc, v); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

// marshalNumber writes the stored literal verbatim, so 1e3 stays 1e3
// and 0.10 keeps its trailing zero.
func marshalNumber(enc *jsontext.Encoder, n core.Number) error {
	return enc.WriteValue(jsontext.Value(n))
}
