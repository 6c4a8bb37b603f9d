package loader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var errInvalidUTF8 = errors.New("invalid utf-8 byte sequence")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoding decodes raw file bytes into UTF-8 text.
type Encoding struct {
	Name   string
	Decode func([]byte) ([]byte, error)
}

// Encodings is the ordered list tried before falling back to a raw parse.
// Latin-1 accepts every byte, so later entries only matter when an earlier
// decode succeeds but the resulting text fails to parse.
var Encodings = []Encoding{
	{Name: "utf-8", Decode: decodeUTF8},
	{Name: "latin-1", Decode: charmapDecoder(charmap.ISO8859_1)},
	{Name: "cp1252", Decode: charmapDecoder(charmap.Windows1252)},
	{Name: "iso-8859-1", Decode: charmapDecoder(charmap.ISO8859_1)},
}

func decodeUTF8(b []byte) ([]byte, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return nil, errInvalidUTF8
	}
	return b, nil
}

func charmapDecoder(enc encoding.Encoding) func([]byte) ([]byte, error) {
	return func(b []byte) ([]byte, error) {
		out, _, err := transform.Bytes(enc.NewDecoder(), b)
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return out, nil
	}
}
