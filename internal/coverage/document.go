package coverage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedDocument is returned when the input is not valid UTF-8 JSON.
	ErrMalformedDocument = errors.New("malformed JSON document")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("top-level JSON value is not an object")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a read-only view of a parsed localization resource.
// Top-level keys keep the order of their first appearance; a repeated key
// takes the value of its last occurrence.
type Document struct {
	keys   []string
	values map[string]gjson.Result
}

// LoadDocument reads and parses the JSON document at path.
// The file is closed before returning, whether or not parsing succeeds.
func LoadDocument(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ParseDocument parses raw JSON bytes into a Document.
// A leading UTF-8 byte order mark is stripped and accepted. Input that is
// not valid UTF-8 or not valid JSON yields ErrMalformedDocument.
func ParseDocument(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) || !gjson.ValidBytes(data) {
		return nil, ErrMalformedDocument
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}

	doc := &Document{values: make(map[string]gjson.Result)}
	root.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if _, seen := doc.values[k]; !seen {
			doc.keys = append(doc.keys, k)
		}
		doc.values[k] = value
		return true
	})
	return doc, nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of distinct top-level keys.
func (d *Document) Len() int { return len(d.keys) }

// ObjectKeys returns the distinct keys of the object stored under the
// top-level entry key, in their order of appearance. ok is false when the
// entry is absent or not an object; an empty object yields (empty, true).
func (d *Document) ObjectKeys(key string) (keys []string, ok bool) {
	v, found := d.values[key]
	if !found || !v.IsObject() {
		return nil, false
	}

	keys = []string{}
	v.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return lo.Uniq(keys), true
}
