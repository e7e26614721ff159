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
	"strconv"

	verrors "dirpx.dev/verex/internal/errors"
)

// MaxNumericField is the largest value any numeric version component
// (major, minor, patch, or pre-release number) may hold: 2^31-1. Values
// beyond this are rejected by both the nominal constructors and the parser
// as numeric overflow.
const MaxNumericField = 1<<31 - 1

// MajorVersion is the non-negative major component of a Version's core.
//
// Distinct nominal types for Major, Minor, and Patch prevent mixing up
// positional integers at the API surface (a MinorVersion cannot be passed
// where a PatchNumber is expected without an explicit conversion).
type MajorVersion int

// NewMajorVersion validates v and returns a MajorVersion.
//
// v must be within [0, MaxNumericField]; values outside that range produce a
// *verrors.ValidationError.
func NewMajorVersion(v int) (MajorVersion, error) {
	if v < 0 || v > MaxNumericField {
		return 0, &verrors.ValidationError{Type: "MajorVersion", Reason: "must be in [0, " + strconv.Itoa(MaxNumericField) + "]", Value: v}
	}
	return MajorVersion(v), nil
}

// Int returns the underlying integer value.
func (m MajorVersion) Int() int { return int(m) }

// String renders the decimal form of m.
func (m MajorVersion) String() string { return strconv.Itoa(int(m)) }

// Next returns m+1, or an error if that would overflow MaxNumericField.
func (m MajorVersion) Next() (MajorVersion, error) { return NewMajorVersion(int(m) + 1) }

// MinorVersion is the non-negative minor component of a Version's core.
type MinorVersion int

// NewMinorVersion validates v and returns a MinorVersion.
func NewMinorVersion(v int) (MinorVersion, error) {
	if v < 0 || v > MaxNumericField {
		return 0, &verrors.ValidationError{Type: "MinorVersion", Reason: "must be in [0, " + strconv.Itoa(MaxNumericField) + "]", Value: v}
	}
	return MinorVersion(v), nil
}

// Int returns the underlying integer value.
func (m MinorVersion) Int() int { return int(m) }

// String renders the decimal form of m.
func (m MinorVersion) String() string { return strconv.Itoa(int(m)) }

// Next returns m+1, or an error if that would overflow MaxNumericField.
func (m MinorVersion) Next() (MinorVersion, error) { return NewMinorVersion(int(m) + 1) }

// PatchNumber is the non-negative patch component of a Version's core.
type PatchNumber int

// NewPatchNumber validates v and returns a PatchNumber.
func NewPatchNumber(v int) (PatchNumber, error) {
	if v < 0 || v > MaxNumericField {
		return 0, &verrors.ValidationError{Type: "PatchNumber", Reason: "must be in [0, " + strconv.Itoa(MaxNumericField) + "]", Value: v}
	}
	return PatchNumber(v), nil
}

// Int returns the underlying integer value.
func (p PatchNumber) Int() int { return int(p) }

// String renders the decimal form of p.
func (p PatchNumber) String() string { return strconv.Itoa(int(p)) }

// Next returns p+1, or an error if that would overflow MaxNumericField.
func (p PatchNumber) Next() (PatchNumber, error) { return NewPatchNumber(int(p) + 1) }

// PreReleaseNumber is the positive (>= 1) numeric suffix carried by a
// versioned PreReleaseClassifier (e.g. the 2 in "rc.2").
type PreReleaseNumber int

// NewPreReleaseNumber validates v and returns a PreReleaseNumber.
//
// v must be within [1, MaxNumericField]; zero and negative values are
// rejected, since a pre-release number of 0 has no meaning distinct from
// the classifier alone.
func NewPreReleaseNumber(v int) (PreReleaseNumber, error) {
	if v < 1 || v > MaxNumericField {
		return 0, &verrors.ValidationError{Type: "PreReleaseNumber", Reason: "must be in [1, " + strconv.Itoa(MaxNumericField) + "]", Value: v}
	}
	return PreReleaseNumber(v), nil
}

// Int returns the underlying integer value.
func (n PreReleaseNumber) Int() int { return int(n) }

// String renders the decimal form of n.
func (n PreReleaseNumber) String() string { return strconv.Itoa(int(n)) }
