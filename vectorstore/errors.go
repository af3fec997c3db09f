// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vectorstore

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderRequired indicates that no retriever provider was configured.
	ErrProviderRequired = errors.New("retriever provider is required")

	// ErrUnknownProvider indicates that the configured retriever provider
	// does not match any supported backend.
	ErrUnknownProvider = errors.New("unknown retriever provider")

	// ErrMissingCredentials indicates that a secret required to reach the
	// backend (connection URL, host, file path) was not configured.
	ErrMissingCredentials = errors.New("missing backend credentials")

	// ErrEmbedderRequired indicates that a store was constructed without
	// an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrConfigRequired indicates that a store was constructed without
	// backend configuration.
	ErrConfigRequired = errors.New("backend configuration is required")

	// ErrInvalidLimit indicates a retrieval result limit below one.
	ErrInvalidLimit = errors.New("result limit must be at least 1")
)

// BackendError represents a failure inside a specific vector store backend.
// It carries the backend name and the failed operation so that callers
// running several stores can tell which one misbehaved.
type BackendError struct {
	// Backend is the provider name, e.g. "pgvector".
	Backend string

	// Op is the operation that failed, e.g. "retrieve".
	Op string

	// Err is the underlying cause.
	Err error
}

// Error returns the formatted error message.
func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError wraps err with the backend name and operation.
func NewBackendError(backend, op string, err error) *BackendError {
	return &BackendError{Backend: backend, Op: op, Err: err}
}
