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
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/verex/internal/errors"
	"dirpx.dev/verex/internal/semver"
)

// outputFormat selects how a resolved Version is rendered to an io.Writer.
type outputFormat string

const (
	outputConsole outputFormat = "console"
	outputRaw     outputFormat = "raw"
	outputJSON    outputFormat = "json"
	outputYAML    outputFormat = "yaml"
)

// writeVersion renders v to w per format. console uses the Extended form
// (cosmetically truncated SHA identifiers, for a human reading a terminal);
// raw, json, and yaml all use the untruncated Full form — never the
// truncated one — since any of the three may be captured by a script or a
// release pipeline downstream.
func writeVersion(w io.Writer, format outputFormat, v semver.Version) error {
	switch format {
	case outputConsole:
		_, err := fmt.Fprintln(w, v.StringExtended())
		return err
	case outputRaw:
		_, err := fmt.Fprintln(w, v.StringFull())
		return err
	case outputJSON:
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	case outputYAML:
		encoded, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(encoded))
		return err
	default:
		return &errors.ValidationError{Type: "outputFormat", Reason: "must be one of console, raw, json, yaml", Value: string(format)}
	}
}
