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

// Package apis defines the public contracts of werrors: the capabilities an
// application error may implement and the small view types the adapters
// exchange.
//
// The capabilities are deliberately independent interfaces, not a hierarchy.
// An error can produce its own HTTP response (Responder), expose a
// classification (KindedError, ReasonedError), carry a backtrace it captured
// earlier (Backtracer), or none of the above — the conversion boundary in the
// root package probes for each one separately and supplies defaults for
// whatever is missing.
//
// Transport adapters (httpx, grpcx), the log emitter, and business code
// should depend on this package, never on each other's concrete types.
// It must stay lightweight: interfaces and plain view structs only.
package apis
