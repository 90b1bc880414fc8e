// Package ingest implements the text acquisition and cleaning stages of the
// rag-qa pipeline: robust file decoding, unicode/OCR normalization, and
// sentence segmentation.
//
// Decoding tries a fixed candidate list (UTF-8, UTF-8 with BOM, Latin-1,
// Windows-1252) in order and takes the first success. Latin-1 accepts any
// byte sequence, so for non-UTF-8 input the search always terminates there;
// a genuinely mismatched encoding yields mojibake instead of an error. That
// precision loss is accepted in exchange for never refusing a corpus file
// over encoding detection.
//
// Segmentation prefers a trained Punkt sentence tokenizer and degrades to a
// deterministic punctuation split on any failure. Segmentation never fails:
// availability of ingestion outranks boundary quality.
package ingest
