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


// Package vectorstore provides the vector store abstraction layer for indexit.
//
// This package defines the Store interface that decouples document indexing
// and retrieval from any particular vector database. It allows different
// backends (pgvector, Qdrant, SQLite) to be used interchangeably behind the
// same contract.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// backend constructors to enforce abstraction and enable multiple backend
// implementations:
//
//	store, err := pgvector.New(cfg, embedder, params)  // returns vectorstore.Store
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to one database's specifics
//   - Swappability: Easy to add alternative backends behind the same contract
//   - Testing: Consumers can use mock implementations without modification
//
// Internal package constructors (newStore) may return concrete types since
// they're only used within the implementation package and its tests.
//
// # The Store Contract
//
// Every backend honors the same semantics:
//
//   - AddDocuments embeds document content and persists each document keyed
//     by its identity. Re-adding an identity replaces the stored record.
//   - Retrieve embeds the query, restricts candidates to those matching the
//     configured metadata filter, and returns the closest matches ordered by
//     descending relevance with scores normalized to [0, 1].
//   - Close releases the backend connection.
//
// Constructors never touch the network. Connections are established lazily
// on first use so that configuration and credential problems surface as
// typed errors before any traffic is sent. The embedded SQLite backend
// only opens its local database file.
//
// # Errors
//
// Backend failures are wrapped in *BackendError carrying the backend name
// and failed operation, so callers running several stores can tell them
// apart. Configuration problems surface as the sentinel errors in this
// package (ErrProviderRequired, ErrUnknownProvider, ErrMissingCredentials)
// and are returned before any connection is attempted.
package vectorstore
