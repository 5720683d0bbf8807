/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package kind defines the canonical classification vocabulary for werrors.
//
// A Kind is the coarse, transport-agnostic answer to "what went wrong":
// invalid input, missing resource, internal fault, exhausted rate limit.
// It is deliberately small and enumerable — the mapper package projects each
// Kind (optionally refined by a reason) onto concrete HTTP and gRPC statuses,
// and that projection only stays reviewable if the vocabulary stays short.
//
// Values are validated strings (lowercase, underscores, bounded length) so
// they survive logs, JSON, and config files without escaping surprises.
// The catalog in kinds.go covers the classes every service hits; libraries
// may mint their own kinds with Parse/MustParse when the catalog is not
// specific enough.
package kind
