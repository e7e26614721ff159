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

package semver

import (
	"encoding/json"
	"strings"

	verrors "dirpx.dev/verex/internal/errors"
	"gopkg.in/yaml.v3"
)

// PreReleaseClassifier is a closed enumeration of the pre-release stages
// verex recognises, ordered by ascending precedence. The enumeration order
// is append-only: inserting a new classifier anywhere but the end would
// silently re-rank every classifier that follows it.
type PreReleaseClassifier int

const (
	// Dev marks a versioned, ongoing development stage.
	Dev PreReleaseClassifier = iota
	// Milestone marks a versioned intermediate milestone build.
	Milestone
	// Alpha marks a versioned early-stage pre-release.
	Alpha
	// Beta marks a versioned feature-complete pre-release.
	Beta
	// ReleaseCandidate marks a versioned release candidate.
	ReleaseCandidate
	// Snapshot marks an unversioned development snapshot. Canonical form is
	// emitted in lowercase ("snapshot"); parsing is always case-insensitive.
	Snapshot
)

// classifierInfo describes one PreReleaseClassifier's canonical name,
// recognised aliases (first alias is canonical), and whether it carries a
// PreReleaseNumber.
type classifierInfo struct {
	aliases  []string
	versioned bool
}

var classifierTable = map[PreReleaseClassifier]classifierInfo{
	Dev:              {aliases: []string{"dev"}, versioned: true},
	Milestone:        {aliases: []string{"milestone", "m"}, versioned: true},
	Alpha:            {aliases: []string{"alpha", "a"}, versioned: true},
	Beta:             {aliases: []string{"beta", "b"}, versioned: true},
	ReleaseCandidate: {aliases: []string{"rc", "cr"}, versioned: true},
	Snapshot:         {aliases: []string{"snapshot"}, versioned: false},
}

// classifierAliasIndex maps every recognised alias (lowercase) to its
// PreReleaseClassifier, built once from classifierTable.
var classifierAliasIndex = func() map[string]PreReleaseClassifier {
	idx := make(map[string]PreReleaseClassifier)
	for c, info := range classifierTable {
		for _, alias := range info.aliases {
			idx[alias] = c
		}
	}
	return idx
}()

// Valid reports whether c is one of the declared PreReleaseClassifier
// constants.
func (c PreReleaseClassifier) Valid() bool {
	_, ok := classifierTable[c]
	return ok
}

// Versioned reports whether c carries a PreReleaseNumber. Every classifier
// except Snapshot is versioned.
func (c PreReleaseClassifier) Versioned() bool {
	return classifierTable[c].versioned
}

// String returns the canonical alias for c (the first entry in its alias
// list), or "" if c is not a recognised classifier.
func (c PreReleaseClassifier) String() string {
	info, ok := classifierTable[c]
	if !ok || len(info.aliases) == 0 {
		return ""
	}
	return info.aliases[0]
}

// TypeName identifies this type for structured error messages.
func (c PreReleaseClassifier) TypeName() string { return "PreReleaseClassifier" }

// ParsePreReleaseClassifier resolves a case-insensitive alias to its
// PreReleaseClassifier. Recognised aliases are listed in classifierTable;
// any other input yields a *verrors.ParseError.
func ParsePreReleaseClassifier(s string) (PreReleaseClassifier, error) {
	c, ok := classifierAliasIndex[strings.ToLower(s)]
	if !ok {
		return 0, &verrors.ParseError{Type: "PreReleaseClassifier", Value: s}
	}
	return c, nil
}

// Validate reports whether c is a recognised classifier.
func (c PreReleaseClassifier) Validate() error {
	if !c.Valid() {
		return &verrors.ValidationError{Type: "PreReleaseClassifier", Reason: "unrecognised classifier ordinal", Value: int(c)}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler, rendering c as its
// canonical alias.
func (c PreReleaseClassifier) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &verrors.MarshalError{Type: "PreReleaseClassifier", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *PreReleaseClassifier) UnmarshalText(text []byte) error {
	parsed, err := ParsePreReleaseClassifier(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c PreReleaseClassifier) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *PreReleaseClassifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &verrors.UnmarshalError{Type: "PreReleaseClassifier", Data: data, Reason: err.Error()}
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (c PreReleaseClassifier) MarshalYAML() (interface{}, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *PreReleaseClassifier) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &verrors.UnmarshalError{Type: "PreReleaseClassifier", Reason: err.Error()}
	}
	return c.UnmarshalText([]byte(s))
}
