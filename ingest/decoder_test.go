package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexJGeorge1/ragqa/types"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodeFile_Encodings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		filename     string
		data         []byte
		wantContent  string
		wantEncoding Encoding
	}{
		{
			name:         "plain utf-8",
			filename:     "a.txt",
			data:         []byte("héllo wörld"),
			wantContent:  "héllo wörld",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "utf-8 with BOM strips the BOM",
			filename:     "b.txt",
			data:         append([]byte{0xEF, 0xBB, 0xBF}, []byte("bom text")...),
			wantContent:  "bom text",
			wantEncoding: EncodingUTF8BOM,
		},
		{
			name:     "latin-1 bytes",
			filename: "c.txt",
			// "café" in Latin-1: é = 0xE9, invalid as UTF-8.
			data:         []byte{'c', 'a', 'f', 0xE9},
			wantContent:  "café",
			wantEncoding: EncodingLatin1,
		},
		{
			name:         "markdown extension",
			filename:     "d.md",
			data:         []byte("# Title\n\nBody."),
			wantContent:  "# Title\n\nBody.",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "uppercase extension",
			filename:     "e.TXT",
			data:         []byte("upper"),
			wantContent:  "upper",
			wantEncoding: EncodingUTF8,
		},
		{
			name:         "surrounding whitespace is trimmed",
			filename:     "f.txt",
			data:         []byte("  \n padded \t\n"),
			wantContent:  "padded",
			wantEncoding: EncodingUTF8,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.filename, tt.data)
			doc, err := DecodeFile(path)

			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, doc.Content)
			assert.Equal(t, tt.wantEncoding, doc.Encoding)
			assert.Equal(t, path, doc.Path)
		})
	}
}

func TestDecodeFile_Windows1252ShadowedByLatin1(t *testing.T) {
	t.Parallel()

	// 0x93/0x94 are curly quotes in Windows-1252 but control characters in
	// Latin-1. Latin-1 accepts every byte, so it wins; the mismatch is the
	// documented availability-over-precision tradeoff.
	path := writeFile(t, "quotes.txt", []byte{0x93, 'h', 'i', 0x94})
	doc, err := DecodeFile(path)

	require.NoError(t, err)
	assert.Equal(t, EncodingLatin1, doc.Encoding)
	assert.Contains(t, doc.Content, "hi")
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeFile(filepath.Join(t.TempDir(), "absent.txt"))
		assert.True(t, types.HasCode(err, types.ErrNotFound), "got %v", err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "report.pdf", []byte("%PDF-1.4 content"))
		_, err := DecodeFile(path)
		assert.True(t, types.HasCode(err, types.ErrUnsupportedFormat), "got %v", err)
	})

	t.Run("empty after trimming", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "blank.txt", []byte("   \n\t  "))
		_, err := DecodeFile(path)
		assert.True(t, types.HasCode(err, types.ErrEmptyContent), "got %v", err)
	})

	t.Run("zero byte file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "zero.txt", nil)
		_, err := DecodeFile(path)
		assert.True(t, types.HasCode(err, types.ErrEmptyContent), "got %v", err)
	})
}

func TestDecodeBytes_OrderShortCircuits(t *testing.T) {
	t.Parallel()

	// Valid UTF-8 must be labeled utf-8 even though Latin-1 would also
	// accept the bytes.
	text, enc, err := decodeBytes([]byte("plain ascii"))
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", text)
	assert.Equal(t, EncodingUTF8, enc)
}
