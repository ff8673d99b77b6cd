// Copyright 2023 Greenmask
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

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// SetLogLevel - set up the global logger. Logs are always written to stderr since stdout carries the values
func SetLogLevel(logLevelStr string, logFormat string) error {
	l, err := NewLogger(os.Stderr, logLevelStr, logFormat)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}

func NewLogger(w io.Writer, logLevelStr string, logFormat string) (zerolog.Logger, error) {

	var logLevel zerolog.Level
	switch strings.ToLower(logLevelStr) {
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch strings.ToLower(logFormat) {
	case LogFormatJsonValue:
		formatWriter = w
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %s", logFormat)
	}

	if logLevel == zerolog.DebugLevel {
		return zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Int("pid", os.Getpid()).Logger(), nil
	}
	return zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp().
		Logger(), nil
}
