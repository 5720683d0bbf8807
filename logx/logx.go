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

// Package logx emits canonical errors to a zerolog sink.
//
// Every failure that reaches a transport boundary produces exactly one WARN
// event carrying the error's classification. Backtrace frames are appended
// only when the configured verbosity asks for them; at the default settings
// the event stays compact.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"dirpx.dev/werrors"
	"dirpx.dev/werrors/config"
)

// Reporter writes one log event per reported error.
type Reporter struct {
	log      zerolog.Logger
	settings *config.Settings
}

// New builds a Reporter writing JSON events to w. Settings decide whether
// backtraces are included; nil settings mean the defaults (warn level, no
// backtraces).
func New(w io.Writer, settings *config.Settings) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	if settings == nil {
		settings = &config.Settings{LogLevel: zerolog.WarnLevel}
	}
	return &Reporter{
		log:      zerolog.New(w).With().Timestamp().Logger(),
		settings: settings,
	}
}

// Report emits a single WARN event for the error, with the error's message
// as the event message. A nil error emits nothing.
//
// Fields:
//
//	kind       canonical classification
//	reason     subcase, omitted when empty
//	details    structured data, omitted when empty
//	cause      underlying error, omitted when absent
//	backtrace  captured frames, only in verbose mode and only if non-empty
func (r *Reporter) Report(e *werrors.Error) {
	if e == nil {
		return
	}

	ev := r.log.Warn().
		Str("kind", e.Kind.String())
	if e.Reason != "" {
		ev = ev.Str("reason", e.Reason.String())
	}
	if len(e.Details) > 0 {
		ev = ev.Interface("details", e.Details)
	}
	if e.Cause != nil {
		ev = ev.AnErr("cause", e.Cause)
	}

	if r.settings.Verbose() {
		if tr := e.Backtrace(); !tr.Empty() {
			frames := tr.Frames()
			lines := make([]string, len(frames))
			for i, f := range frames {
				lines[i] = f.String()
			}
			ev = ev.Strs("backtrace", lines)
		}
	}

	ev.Msg(e.Message)
}
