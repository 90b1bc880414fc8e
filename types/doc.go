// Package types defines the shared error contract for the rag-qa pipeline.
//
// It is the lowest-level package in the module and depends on nothing else,
// so every layer (ingest, store, cmd) can report failures through the same
// structured Error without import cycles. Callers branch on ErrorCode rather
// than matching message text:
//
//	doc, err := ingest.DecodeFile("notes.md")
//	if types.HasCode(err, types.ErrNotFound) {
//	    // skip missing files
//	}
package types
