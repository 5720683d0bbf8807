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

// Package config loads the process-wide error-handling settings from the
// environment.
//
// Two knobs exist, both read once at startup:
//
//	WERRORS_LOG_LEVEL  zerolog level name ("debug", "warn", ...); default "warn"
//	WERRORS_BACKTRACE  enable backtrace capture at conversion; default false
//
// Apply installs the settings globally. Flipping the environment after Apply
// has no effect; the capture toggle and log level are startup decisions, not
// per-request ones.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"dirpx.dev/werrors/backtrace"
)

const envPrefix = "werrors"

// Settings is the resolved configuration.
type Settings struct {
	// LogLevel is the minimum level the error emitter logs at.
	LogLevel zerolog.Level
	// Backtrace enables frame capture when errors cross the conversion
	// boundary. Off by default: capture costs a runtime.Callers walk per
	// conversion.
	Backtrace bool
}

// Load reads the environment and returns validated settings. Unset variables
// take their defaults; a malformed level name is an error rather than a
// silent fallback.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_level", "warn")
	v.SetDefault("backtrace", false)

	raw := strings.TrimSpace(strings.ToLower(v.GetString("log_level")))
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("config: invalid WERRORS_LOG_LEVEL %q: %w", raw, err)
	}

	return &Settings{
		LogLevel:  level,
		Backtrace: v.GetBool("backtrace"),
	}, nil
}

// Apply installs the settings process-wide: the zerolog global level and the
// backtrace capture toggle. Call once during startup, before serving.
func (s *Settings) Apply() {
	zerolog.SetGlobalLevel(s.LogLevel)
	backtrace.SetCapture(s.Backtrace)
}

// Verbose reports whether the settings ask for backtraces in log output:
// the level must reach debug and capture must be on.
func (s *Settings) Verbose() bool {
	return s.LogLevel <= zerolog.DebugLevel && s.Backtrace
}
