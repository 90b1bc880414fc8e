package ingest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/AlexJGeorge1/ragqa/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// supportedExts gates which files the decoder will touch at all.
var supportedExts = map[string]bool{
	".txt": true,
	".md":  true,
}

// candidate is one entry in the ordered decoding list.
type candidate struct {
	encoding Encoding
	decode   func(data []byte) (string, error)
}

// candidates are attempted in order; the first success wins.
//
// Latin-1 accepts every byte sequence, so it terminates the search for any
// input that is not valid UTF-8 and Windows-1252 is effectively unreachable.
// A file in some other 8-bit encoding will therefore "decode" into mojibake
// rather than fail. This is a deliberate availability-over-precision
// tradeoff: ingestion should not refuse a corpus over encoding detection.
var candidates = []candidate{
	{EncodingUTF8, decodeUTF8},
	{EncodingUTF8BOM, decodeUTF8BOM},
	{EncodingLatin1, decodeCharmap(charmap.ISO8859_1)},
	{EncodingCP1252, decodeCharmap(charmap.Windows1252)},
}

// DecodeFile reads and decodes a corpus file.
//
// Failure modes, in check order:
//   - types.ErrNotFound            path does not exist
//   - types.ErrUnsupportedFormat   extension outside {.txt, .md}
//   - types.ErrDecodeFailed        no candidate encoding succeeded
//   - types.ErrEmptyContent        decoded content is blank after trimming
func DecodeFile(path string) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		return Document{}, types.NewError(types.ErrNotFound, "file not found").
			WithPath(path).WithCause(err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return Document{}, types.NewError(types.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported file format %q, only .txt and .md are supported", ext)).
			WithPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, types.NewError(types.ErrNotFound, "file not readable").
			WithPath(path).WithCause(err)
	}

	text, enc, err := decodeBytes(data)
	if err != nil {
		return Document{}, types.NewError(types.ErrDecodeFailed,
			"could not decode file with any supported encoding").
			WithPath(path).WithCause(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Document{}, types.NewError(types.ErrEmptyContent, "file is empty").
			WithPath(path)
	}

	return Document{
		ID:       path,
		Path:     path,
		Content:  text,
		Encoding: enc,
	}, nil
}

// decodeBytes walks the candidate list and returns the first successful
// decode along with the encoding that produced it.
func decodeBytes(data []byte) (string, Encoding, error) {
	var lastErr error
	for _, c := range candidates {
		text, err := c.decode(data)
		if err == nil {
			return text, c.encoding, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}

// decodeUTF8 accepts strictly valid UTF-8 without a byte-order mark. Inputs
// carrying a BOM are rejected here so the utf-8-sig candidate gets to strip
// it instead of leaving U+FEFF in the content.
func decodeUTF8(data []byte) (string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return "", fmt.Errorf("utf-8: unexpected byte-order mark")
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("utf-8: invalid byte sequence")
	}
	return string(data), nil
}

// decodeUTF8BOM accepts valid UTF-8 prefixed with a byte-order mark and
// strips it.
func decodeUTF8BOM(data []byte) (string, error) {
	if !bytes.HasPrefix(data, utf8BOM) {
		return "", fmt.Errorf("utf-8-sig: missing byte-order mark")
	}
	rest := data[len(utf8BOM):]
	if !utf8.Valid(rest) {
		return "", fmt.Errorf("utf-8-sig: invalid byte sequence after byte-order mark")
	}
	return string(rest), nil
}

// decodeCharmap adapts an x/text single-byte charmap into a candidate
// decode function.
func decodeCharmap(cm *charmap.Charmap) func(data []byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", cm.String(), err)
		}
		return string(out), nil
	}
}
