// Package tokenizer provides token count estimation for chunk-size
// decisions. Counting prefers the model's subword tokenizer (tiktoken) and
// degrades to a whitespace word count when the encoding cannot be loaded,
// so ingestion never blocks on tokenizer availability.
package tokenizer
