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
	"regexp"
	"strings"

	verrors "dirpx.dev/verex/internal/errors"
)

// identifierPattern matches a single SemVer 2.0.0 pre-release or build
// identifier: one or more ASCII alphanumerics or hyphens.
var identifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// shaHexDigits is how many hex digits follow the "sha" prefix once an
// Extended-rendering identifier has been truncated, matching Git's short-SHA
// convention.
const shaHexDigits = 7

// shaIdentifierTruncateLen is the full identifier length ("sha" + shaHexDigits)
// above which an Extended-rendering "sha..." identifier gets truncated (§9
// SHA truncation note). Truncation never applies to structured (JSON/YAML)
// serialization.
const shaIdentifierTruncateLen = len("sha") + shaHexDigits

// Metadata is a non-empty ordered sequence of build-metadata identifiers,
// rendered as "+id1.id2...". Metadata never affects version precedence.
type Metadata struct {
	identifiers []string
}

// NewMetadata validates identifiers and returns a Metadata value.
//
// identifiers must be non-empty, and each entry must be a non-empty string
// over [0-9A-Za-z-].
func NewMetadata(identifiers []string) (Metadata, error) {
	if len(identifiers) == 0 {
		return Metadata{}, &verrors.ValidationError{Type: "Metadata", Reason: "must contain at least one identifier"}
	}
	for i, id := range identifiers {
		if !identifierPattern.MatchString(id) {
			return Metadata{}, &verrors.ValidationError{Type: "Metadata", Field: "identifiers", Reason: "identifier must match [0-9A-Za-z-]+", Value: id}
		}
		_ = i
	}
	cp := make([]string, len(identifiers))
	copy(cp, identifiers)
	return Metadata{identifiers: cp}, nil
}

// Identifiers returns a copy of the ordered identifier list.
func (m Metadata) Identifiers() []string {
	cp := make([]string, len(m.identifiers))
	copy(cp, m.identifiers)
	return cp
}

// String renders the identifier list joined by '.', with no leading '+'.
func (m Metadata) String() string {
	return strings.Join(m.identifiers, ".")
}

// StringExtended renders the identifier list the same way as String, except
// any identifier that begins with "sha" and is longer than
// shaIdentifierTruncateLen characters is truncated to that length. This is
// a cosmetic, display-only transformation: it must never be applied before
// JSON or YAML serialization.
func (m Metadata) StringExtended() string {
	rendered := make([]string, len(m.identifiers))
	for i, id := range m.identifiers {
		if strings.HasPrefix(id, "sha") && len(id) > shaIdentifierTruncateLen {
			rendered[i] = id[:shaIdentifierTruncateLen]
		} else {
			rendered[i] = id
		}
	}
	return strings.Join(rendered, ".")
}

// Equal reports whether m and other carry the same identifiers in the same
// order.
func (m Metadata) Equal(other Metadata) bool {
	if len(m.identifiers) != len(other.identifiers) {
		return false
	}
	for i := range m.identifiers {
		if m.identifiers[i] != other.identifiers[i] {
			return false
		}
	}
	return true
}
