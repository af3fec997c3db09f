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


package ingestion

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrConfigRequired is returned when a configuration is not provided.
	ErrConfigRequired = errors.New("configuration required")

	// ErrNoDocuments is returned when an invocation carries nothing to
	// ingest and sample loading is disabled.
	ErrNoDocuments = errors.New("no documents to ingest")

	// ErrInvalidDocsFile is returned when the documents file is missing,
	// unreadable, or malformed.
	ErrInvalidDocsFile = errors.New("invalid documents file")
)
