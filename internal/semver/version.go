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
	"fmt"

	verrors "dirpx.dev/verex/internal/errors"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is an immutable Semantic Versioning 2.0.0 value: a core
// (major.minor.patch) plus an optional PreRelease and an optional Metadata.
//
// Version values are always constructed through NewVersion or ParseVersion
// and never mutated afterward; every operation that would change a
// component (NextMajor, NextMinor, NextPatch) returns a new value.
//
// This type wraps github.com/blang/semver/v4 for raw syntactic validation of
// its rendered form, the same role blang/semver plays in the teacher this
// model is descended from, but owns its own precedence rules: classifier
// ordinal governs pre-release ordering rather than blang's generic
// lexical/numeric identifier comparison, since verex's classifiers form a
// closed, explicitly ordered hierarchy.
type Version struct {
	major      MajorVersion
	minor      MinorVersion
	patch      PatchNumber
	preRelease *PreRelease
	metadata   *Metadata
}

// NewVersion constructs a Version from already-validated components.
// preRelease and metadata may be nil.
func NewVersion(major MajorVersion, minor MinorVersion, patch PatchNumber, preRelease *PreRelease, metadata *Metadata) Version {
	return Version{major: major, minor: minor, patch: patch, preRelease: preRelease, metadata: metadata}
}

// Major, Minor, and Patch return the core components.
func (v Version) Major() MajorVersion { return v.major }
func (v Version) Minor() MinorVersion { return v.minor }
func (v Version) Patch() PatchNumber  { return v.patch }

// PreRelease returns the pre-release component and whether one is set.
func (v Version) PreRelease() (PreRelease, bool) {
	if v.preRelease == nil {
		return PreRelease{}, false
	}
	return *v.preRelease, true
}

// Metadata returns the build-metadata component and whether one is set.
func (v Version) Metadata() (Metadata, bool) {
	if v.metadata == nil {
		return Metadata{}, false
	}
	return *v.metadata, true
}

// IsFinal reports whether v is a final release: no pre-release component.
func (v Version) IsFinal() bool { return v.preRelease == nil }

// Core returns a new Version holding only v's major.minor.patch, dropping
// any pre-release and metadata. Used when reducing a TargetSet keyword or a
// Tag to its core for comparison.
func (v Version) Core() Version {
	return Version{major: v.major, minor: v.minor, patch: v.patch}
}

// CompareCore compares only the major.minor.patch triple of v and other,
// ignoring pre-release and metadata.
func (v Version) CompareCore(other Version) int {
	if v.major != other.major {
		if v.major < other.major {
			return -1
		}
		return 1
	}
	if v.minor != other.minor {
		if v.minor < other.minor {
			return -1
		}
		return 1
	}
	if v.patch != other.patch {
		if v.patch < other.patch {
			return -1
		}
		return 1
	}
	return 0
}

// Compare orders v against other per SemVer 2.0.0 §11: core numerically,
// then a final release outranks a pre-release of the same core, then
// pre-release classifier ordinal and number. Build metadata never
// contributes to ordering. Returns -1, 0, or 1.
func (v Version) Compare(other Version) int {
	if c := v.CompareCore(other); c != 0 {
		return c
	}
	switch {
	case v.preRelease == nil && other.preRelease == nil:
		return 0
	case v.preRelease == nil:
		return 1
	case other.preRelease == nil:
		return -1
	default:
		return v.preRelease.Compare(*other.preRelease)
	}
}

// Less, Equal, and Greater are Compare-derived convenience predicates.
func (v Version) Less(other Version) bool    { return v.Compare(other) < 0 }
func (v Version) Equal(other Version) bool   { return v.Compare(other) == 0 }
func (v Version) Greater(other Version) bool { return v.Compare(other) > 0 }

// NextMajor returns base.major+1, 0, 0 with pre-release and metadata
// cleared: incrementing major resets minor and patch.
func (v Version) NextMajor() (Version, error) {
	next, err := v.major.Next()
	if err != nil {
		return Version{}, err
	}
	return Version{major: next}, nil
}

// NextMinor returns base.major, base.minor+1, 0 with pre-release and
// metadata cleared: incrementing minor resets patch.
func (v Version) NextMinor() (Version, error) {
	next, err := v.minor.Next()
	if err != nil {
		return Version{}, err
	}
	return Version{major: v.major, minor: next}, nil
}

// NextPatch returns base.major, base.minor, base.patch+1 with pre-release
// and metadata cleared.
func (v Version) NextPatch() (Version, error) {
	next, err := v.patch.Next()
	if err != nil {
		return Version{}, err
	}
	return Version{major: v.major, minor: v.minor, patch: next}, nil
}

// String renders the Standard form: major.minor.patch[-preRelease]. Build
// metadata is always excluded.
func (v Version) String() string {
	s := fmt.Sprintf("%s.%s.%s", v.major, v.minor, v.patch)
	if v.preRelease != nil {
		s += "-" + v.preRelease.String()
	}
	return s
}

// StringExtended renders the Extended form: major.minor.patch[-preRelease][+metadata].
// Metadata identifiers are rendered via Metadata.StringExtended, which
// cosmetically truncates long "sha..." identifiers to the first 7 hex
// digits following the Git short-SHA convention; this form is for UI display
// only and must never be persisted, serialized, or emitted as a tag — use
// StringFull for that.
func (v Version) StringExtended() string {
	s := v.String()
	if v.metadata != nil {
		s += "+" + v.metadata.StringExtended()
	}
	return s
}

// StringFull renders major.minor.patch[-preRelease][+metadata] with metadata
// identifiers rendered in full via Metadata.String, with no SHA truncation.
// This is the form used for persisted emission: tag names, JSON/YAML
// serialization, and any other structured output.
func (v Version) StringFull() string {
	s := v.String()
	if v.metadata != nil {
		s += "+" + v.metadata.String()
	}
	return s
}

// Validate checks v's components for non-negativity and confirms the
// rendered full form is syntactically valid SemVer 2.0.0 by round-tripping
// it through github.com/blang/semver/v4, the same defense-in-depth check the
// teacher model performs before emitting a version.
func (v Version) Validate() error {
	if v.major < 0 {
		return &verrors.ValidationError{Type: "Version", Field: "major", Reason: "must be non-negative", Value: int(v.major)}
	}
	if v.minor < 0 {
		return &verrors.ValidationError{Type: "Version", Field: "minor", Reason: "must be non-negative", Value: int(v.minor)}
	}
	if v.patch < 0 {
		return &verrors.ValidationError{Type: "Version", Field: "patch", Reason: "must be non-negative", Value: int(v.patch)}
	}
	if _, err := bsemver.Parse(v.StringFull()); err != nil {
		return &verrors.ValidationError{Type: "Version", Reason: "not well-formed SemVer 2.0.0: " + err.Error(), Value: v.StringFull()}
	}
	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no pre-release or metadata.
func (v Version) IsZero() bool {
	return v.major == 0 && v.minor == 0 && v.patch == 0 && v.preRelease == nil && v.metadata == nil
}

// TypeName identifies this type for structured error messages.
func (v Version) TypeName() string { return "Version" }

// MarshalJSON implements json.Marshaler, serializing v as its full string
// form (untruncated metadata). A Version that fails Validate is not emitted.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.StringFull())
}

// UnmarshalJSON implements json.Unmarshaler, parsing the JSON string
// through ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &verrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing v as its full string
// form (untruncated metadata).
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.StringFull(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, parsing the YAML scalar
// through ParseVersion.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &verrors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
