// Package loader provides a unified DocumentLoader interface and the built-in
// file loaders for the ingestion pipeline.
//
// Each loader wraps the ingest decoder for a specific format and produces
// []ingest.Document with appropriate metadata. Supported formats out of the
// box:
//   - Plain text (.txt)
//   - Markdown (.md)
//
// Use Registry to route loading by file extension:
//
//	registry := loader.NewRegistry()
//	docs, err := registry.Load(ctx, "/path/to/notes.md")
//
// Custom loaders can be registered for any extension:
//
//	registry.Register(".rst", myRSTLoader)
package loader
