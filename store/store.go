package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/AlexJGeorge1/ragqa/types"
)

// Record is an arbitrary JSON-serializable mapping, the unit of saved state.
// No schema is enforced beyond JSON compatibility.
type Record = map[string]any

// LoadStatus tags how a load resolved.
type LoadStatus int

const (
	// LoadOK means the file existed and parsed.
	LoadOK LoadStatus = iota
	// LoadAbsent means the file did not exist.
	LoadAbsent
	// LoadCorrupt means the file existed but could not be read or parsed.
	LoadCorrupt
)

// SaveJSON writes rec to path as pretty-printed UTF-8 JSON (2-space indent,
// non-ASCII preserved literally), creating missing parent directories.
//
// Serialization happens fully in memory before anything touches disk, so a
// non-serializable Record (types.ErrSerialization) never leaves a partial
// file behind. Filesystem failures surface as types.ErrWriteFailed. Both
// errors carry the destination path and cause.
func SaveJSON(rec Record, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return types.NewError(types.ErrSerialization, "record is not JSON serializable").
			WithPath(path).WithCause(err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return types.NewError(types.ErrWriteFailed, "cannot create parent directory").
				WithPath(path).WithCause(err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return types.NewError(types.ErrWriteFailed, "cannot write file").
			WithPath(path).WithCause(err)
	}
	return nil
}

// LoadJSON reads a Record from path, returning an empty Record if the file
// is absent, unreadable, or corrupt. It never fails: read-time errors during
// optional-state loading must not abort a run. Callers that need to tell the
// cases apart use LoadJSONResult.
func LoadJSON(path string) Record {
	rec, _ := LoadJSONResult(path)
	return rec
}

// LoadJSONResult is LoadJSON with the resolution tagged. The returned Record
// is never nil.
func LoadJSONResult(path string) (Record, LoadStatus) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, LoadAbsent
		}
		return Record{}, LoadCorrupt
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec == nil {
		return Record{}, LoadCorrupt
	}
	return rec, LoadOK
}
