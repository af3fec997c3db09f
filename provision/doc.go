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


// Package provision creates the schema objects the backend adapters
// expect: the document table or collection, the similarity index over
// the embedding column, and the namespace metadata index.
//
// Run provisions every backend the configuration carries connection
// parameters for, concurrently and in isolation. Provisioning is
// idempotent: existing objects are left untouched and "already exists"
// counts as success, so re-running it is always safe. Nothing is ever
// dropped.
package provision
