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

package main

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/verex/internal/resolve"
)

// logrusSink adapts resolve.Sink to a *logrus.Logger, translating each
// LogRecord's Context map to structured logrus fields.
type logrusSink struct {
	logger *logrus.Logger
}

func newLogrusSink(logger *logrus.Logger) *logrusSink {
	return &logrusSink{logger: logger}
}

func (s *logrusSink) Log(record resolve.LogRecord) {
	entry := s.logger.WithFields(logrus.Fields(record.Context))
	switch record.Level {
	case resolve.LevelError:
		entry.Error(record.Message)
	case resolve.LevelVerbose:
		entry.Debug(record.Message)
	default:
		entry.Info(record.Message)
	}
}

var _ resolve.Sink = (*logrusSink)(nil)
