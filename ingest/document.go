package ingest

// Encoding identifies which candidate encoding successfully decoded a file.
type Encoding string

// Candidate encodings, in the order the decoder attempts them.
const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-sig"
	EncodingLatin1  Encoding = "latin-1"
	EncodingCP1252  Encoding = "windows-1252"
)

// Document is a decoded input file. It is created by the decoder and is not
// mutated afterwards; downstream stages derive new values from Content.
type Document struct {
	ID       string         `json:"id"`
	Path     string         `json:"path"`
	Content  string         `json:"content"`
	Encoding Encoding       `json:"encoding"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
