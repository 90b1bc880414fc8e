// Package pipeline wires the ingestion stages together: decode via the
// loader registry, normalize, segment into sentences, and estimate token
// counts, with optional Prometheus instrumentation.
//
// Decode failures are the only errors that propagate; segmentation and
// token estimation always degrade to their fallbacks so a corpus walk never
// aborts over a missing linguistic resource.
package pipeline
