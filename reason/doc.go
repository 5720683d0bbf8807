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

// Package reason defines the optional, dot-separated refinement that sits
// under a kind.
//
// Reasons exist for two consumers: log readers, who get a stable marker like
// "storage.pg.connect_timeout" to grep for, and the mapper, whose prefix
// rules match on reason segments to pick a more specific transport status
// than the kind-level default.
//
// Reasons are strictly validated (lowercase segments, bounded length and
// depth) precisely because the mapper treats them as structured input, not
// free text. The empty reason is always acceptable and means "no subcase
// recorded".
package reason
