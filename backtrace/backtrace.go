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

package backtrace

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

// maxDepth caps how many frames a single capture records. Anything deeper is
// runtime plumbing that adds noise, not information.
const maxDepth = 32

// Frame is one resolved call site in a trace.
type Frame struct {
	// Function is the fully qualified function name,
	// e.g. "dirpx.dev/werrors.From".
	Function string
	// File is the absolute source file path as recorded by the compiler.
	File string
	// Line is the line number within File.
	Line int
}

// String renders the frame in the conventional two-line form used by Go
// panic output: function, then indented file:line.
func (f Frame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// Trace is an immutable, ordered snapshot of call frames, innermost first.
//
// A Trace is created once — either captured at a conversion boundary or
// assembled from frames the failure already carried — and never modified
// afterwards. An empty Trace (zero frames) is valid and is what Capture
// returns while capture is disabled.
type Trace struct {
	frames []Frame
}

// captureOn is the process-wide capture toggle. It is written once at
// startup (config.Apply) and only read afterwards; atomic access keeps the
// race detector quiet in tests that flip it.
var captureOn atomic.Bool

// SetCapture enables or disables backtrace capture process-wide. Intended to
// be called exactly once at startup, from configuration loading.
func SetCapture(on bool) {
	captureOn.Store(on)
}

// CaptureEnabled reports whether Capture currently records frames.
func CaptureEnabled() bool {
	return captureOn.Load()
}

// Capture records the current call stack and returns it as a Trace.
//
// skip counts additional stack frames to omit above the caller of Capture:
// with skip=0 the root (first) frame is Capture's direct caller; a converter
// that wants the trace rooted at its own caller passes skip=1. Frames below
// the capture point are unavoidable runtime internals and are dropped.
//
// When capture is disabled the returned Trace is empty but never nil, so
// holders can treat "has a trace" as an invariant and only check depth.
func Capture(skip int) *Trace {
	if !captureOn.Load() {
		return &Trace{}
	}

	pcs := make([]uintptr, maxDepth)
	// +2 skips runtime.Callers itself and this function.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return &Trace{}
	}

	frames := make([]Frame, 0, n)
	it := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := it.Next()
		frames = append(frames, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return &Trace{frames: frames}
}

// Of builds a Trace from already-resolved frames. This is the inheritance
// path: a failure that captured its own trace earlier hands the frames over
// verbatim, and no fresh capture happens. The slice is copied.
func Of(frames []Frame) *Trace {
	if len(frames) == 0 {
		return &Trace{}
	}
	cp := make([]Frame, len(frames))
	copy(cp, frames)
	return &Trace{frames: cp}
}

// Frames returns a copy of the recorded frames, innermost first.
func (t *Trace) Frames() []Frame {
	if t == nil || len(t.frames) == 0 {
		return nil
	}
	cp := make([]Frame, len(t.frames))
	copy(cp, t.frames)
	return cp
}

// Depth returns the number of recorded frames.
func (t *Trace) Depth() int {
	if t == nil {
		return 0
	}
	return len(t.frames)
}

// Empty reports whether the trace carries no frames.
func (t *Trace) Empty() bool {
	return t.Depth() == 0
}

// String renders the whole trace, one frame per String() block, separated by
// newlines. Empty traces render as the empty string.
func (t *Trace) String() string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	for i, f := range t.frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.String())
	}
	return b.String()
}
