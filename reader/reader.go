// Package reader decodes JSON input into the ordered tree model. Object key
// order and number literals survive decoding, so a rendered tree reflects
// the input byte for byte where it matters.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/klauspost/compress/gzip"

	"github.com/sonnes/leafwalk/core"
)

// ErrEmpty reports input that contains no bytes.
var ErrEmpty = errors.New("empty input")

// ErrTrailingData reports content after the first JSON value.
var ErrTrailingData = errors.New("trailing data after value")

// Read decodes a single JSON value from r into a Tree named name. Gzip
// streams are detected by their magic bytes and decompressed transparently.
func Read(r io.Reader, name string) (*core.Tree, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	switch {
	case len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		return decode(gz, name)
	case err != nil && !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("read input: %w", err)
	case len(magic) == 0:
		return nil, ErrEmpty
	}

	return decode(br, name)
}

// ReadFile decodes the JSON document at path. The tree is named after the
// file, minus any .gz suffix.
func ReadFile(path string) (*core.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), ".gz")
	return Read(f, name)
}

// ReadString decodes a JSON document held in a string.
func ReadString(s string) (*core.Tree, error) {
	return Read(strings.NewReader(s), "inline")
}

func decode(r io.Reader, name string) (*core.Tree, error) {
	cr := &countingReader{r: r}
	dec := jsontext.NewDecoder(cr)

	var root any
	if err := json.UnmarshalDecode(dec, &root, json.WithUnmarshalers(valueUnmarshalers())); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	// A well-formed input holds exactly one value.
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", name, ErrTrailingData)
	}

	return &core.Tree{Name: name, Root: root, Size: cr.n}, nil
}

// valueUnmarshalers decodes objects into core.Document (preserving key
// order), arrays into core.Array, and numbers into core.Number (preserving
// the source literal). Strings, bools, and null use the default decoding.
func valueUnmarshalers() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			doc, err := decodeDocument(dec)
			if err != nil {
				return err
			}
			*v = doc
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
		case '0':
			tok, err := dec.ReadToken()
			if err != nil {
				return fmt.Errorf("read number: %w", err)
			}
			*v = core.Number(tok.String())
		default:
			return json.SkipFunc
		}
		return nil
	})
}

// decodeDocument reads one JSON object. The decoder rejects duplicate keys,
// which keeps Document keys unique without a second pass.
func decodeDocument(dec *jsontext.Decoder) (core.Document, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	doc := core.Document{}
	for dec.PeekKind() != '}' {
		var key string
		if err := json.UnmarshalDecode(dec, &key); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var val any
		if err := json.UnmarshalDecode(dec, &val); err != nil {
			return nil, fmt.Errorf("read value for key %q: %w", key, err)
		}
		doc = append(doc, core.Entry{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

func decodeArray(dec *jsontext.Decoder) (core.Array, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := core.Array{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

// countingReader tracks decoded input size for Tree.Size.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
