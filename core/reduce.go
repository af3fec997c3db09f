package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// clearID is the reserved identity carried by the clear sentinel. It starts
// with a NUL byte so it can never collide with a real document identity.
const clearID = "\x00clear"

// Clear returns the sentinel document list that signals "nothing pending".
// Reducing any set with the sentinel yields the empty set.
func Clear() []Document {
	return []Document{{ID: clearID}}
}

// IsClear reports whether docs is the clear sentinel.
func IsClear(docs []Document) bool {
	return len(docs) == 1 && docs[0].ID == clearID
}

// Reduce merges incoming documents into an existing set, deduplicating by
// identity.
//
// Incoming documents overwrite existing ones sharing the same identity in
// place, preserving the identity's first-seen position; new identities are
// appended in order of arrival. Documents without an identity get one
// derived from their content. Passing the clear sentinel as incoming resets
// the set to empty.
//
// Reduce is pure and deterministic; neither input slice is modified.
func Reduce(existing, incoming []Document) []Document {
	if IsClear(incoming) {
		return nil
	}
	if IsClear(existing) {
		existing = nil
	}

	out := make([]Document, 0, len(existing)+len(incoming))
	position := make(map[string]int, len(existing)+len(incoming))

	for _, doc := range slices.Concat(existing, incoming) {
		doc = doc.Normalize()
		if at, seen := position[doc.ID]; seen {
			out[at] = doc
			continue
		}
		position[doc.ID] = len(out)
		out = append(out, doc)
	}

	return out
}

// DecodeDocuments decodes a JSON payload into documents.
//
// Accepted shapes: a single document object, an array of document objects,
// an array of bare strings (content-only documents), or an array mixing the
// two. Decoded documents are not normalized; pass them through Reduce.
func DecodeDocuments(data []byte) ([]Document, error) {
	payload := bytes.TrimSpace(data)
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedPayload)
	}

	if payload[0] == '{' {
		var doc Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return []Document{doc}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	docs := make([]Document, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var content string
			if err := json.Unmarshal(item, &content); err != nil {
				return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedPayload, i, err)
			}
			docs = append(docs, Document{Content: content})
			continue
		}

		var doc Document
		if err := json.Unmarshal(item, &doc); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedPayload, i, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
