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


package sqlite

import "errors"

var (
	// ErrCorruptEmbedding indicates a stored embedding blob that cannot
	// be decoded back into a vector.
	ErrCorruptEmbedding = errors.New("corrupt embedding blob")

	// ErrDimensionMismatch indicates that vectors of different widths
	// were compared, usually after the embedding model changed.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
