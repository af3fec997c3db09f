// Package ingestion provides the pipeline that loads documents into the
// configured vector store.
//
// An invocation runs two stages in order:
//   - Load: take the documents carried by the invocation state, or the
//     sample corpus when enabled, and normalize/deduplicate them.
//   - Persist: open the configured backend, embed and upsert the
//     documents, and close the backend.
//
// On success the returned state carries the clear sentinel, so wiring the
// output back into the next invocation cannot re-ingest stale documents.
// Failures abort the invocation with the original error; re-invoking is
// safe because persistence is an upsert keyed by document identity.
package ingestion
