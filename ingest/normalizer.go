package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ocrFixes maps ligature and typographic characters to simple equivalents.
// Keys do not overlap, so replacement order is irrelevant.
//
// The table is applied after NFKD, which already decomposes the ligatures
// and the ellipsis glyph; those entries only fire on text that skipped
// decomposition and are kept so the table states the full policy in one
// place. The dash and quote entries do the real work: NFKD leaves them
// untouched.
var ocrFixes = strings.NewReplacer(
	"ﬀ", "ff", // ﬀ
	"ﬁ", "fi", // ﬁ
	"ﬂ", "fl", // ﬂ
	"ﬃ", "ffi", // ﬃ
	"ﬄ", "ffl", // ﬄ
	"–", "-", // en dash
	"—", "-", // em dash
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"…", "...", // ellipsis
)

// NormalizeText cleans a decoded string for segmentation and token counting.
// It never fails; empty input returns empty output.
//
// Steps, in order: NFKD compatibility decomposition, OCR/typography fixes,
// whitespace collapse (any run of whitespace becomes one ASCII space), and a
// final trim. The result contains no leading/trailing whitespace and no run
// of two or more whitespace characters, and the function is idempotent.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKD.String(text)
	text = ocrFixes.Replace(text)
	return collapseWhitespace(text)
}

// collapseWhitespace replaces every maximal run of whitespace with a single
// space and trims the ends.
func collapseWhitespace(text string) string {
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))
	wasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}
