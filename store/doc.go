// Package store persists pipeline state as pretty-printed JSON records.
//
// The save and load paths deliberately handle failure differently: SaveJSON
// fails loudly with a structured error (write-time problems are actionable),
// while LoadJSON swallows every failure and returns an empty Record (absent
// or corrupt optional state must never abort a run). LoadJSONResult exposes
// the distinction for callers that want it.
package store
