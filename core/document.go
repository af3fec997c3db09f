package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// MetadataNamespaceKey is the metadata field used to partition documents
// for multi-tenant filtering.
const MetadataNamespaceKey = "namespace"

// Document is the canonical unit of indexed content. The ID is the
// deduplication key, unique within a namespace. Documents are immutable once
// embedded; re-ingesting an ID replaces the stored content and metadata.
type Document struct {
	ID       string         `json:"id,omitempty"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// DeriveID generates a deterministic identity from text content using BLAKE2b hashing.
// This ensures that identical content produces identical identities.
func DeriveID(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Normalize returns the document with a content-derived identity filled in
// when none is set. The receiver is not modified.
func (d Document) Normalize() Document {
	if d.ID == "" {
		d.ID = DeriveID(d.Content)
	}
	return d
}

// Namespace returns the document's namespace metadata value, or the empty
// string when unset.
func (d Document) Namespace() string {
	if d.Metadata == nil {
		return ""
	}
	ns, _ := d.Metadata[MetadataNamespaceKey].(string)
	return ns
}

// Match represents a retrieval result with the stored document and its
// relevance score. Score is similarity in [0,1] with 1 meaning identical.
type Match struct {
	Document Document
	Score    float32
}
