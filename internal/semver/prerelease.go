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

import verrors "dirpx.dev/verex/internal/errors"

// PreRelease pairs a PreReleaseClassifier with its optional PreReleaseNumber.
//
// Invariant: number is present if and only if classifier.Versioned() is
// true. NewPreRelease and NewUnversionedPreRelease are the only
// constructors; there is no exported way to build a PreRelease that
// violates the invariant.
type PreRelease struct {
	classifier PreReleaseClassifier
	number     PreReleaseNumber
	hasNumber  bool
}

// NewPreRelease builds a versioned PreRelease (e.g. rc.2). classifier must
// be Versioned(); number must be >= 1.
func NewPreRelease(classifier PreReleaseClassifier, number PreReleaseNumber) (PreRelease, error) {
	if !classifier.Valid() {
		return PreRelease{}, &verrors.ValidationError{Type: "PreRelease", Field: "classifier", Reason: "unrecognised classifier", Value: int(classifier)}
	}
	if !classifier.Versioned() {
		return PreRelease{}, &verrors.ValidationError{Type: "PreRelease", Field: "classifier", Reason: "classifier is non-versioned and must not carry a number", Value: classifier.String()}
	}
	if number < 1 {
		return PreRelease{}, &verrors.ValidationError{Type: "PreRelease", Field: "number", Reason: "must be >= 1", Value: int(number)}
	}
	return PreRelease{classifier: classifier, number: number, hasNumber: true}, nil
}

// NewUnversionedPreRelease builds a non-versioned PreRelease (e.g.
// snapshot). classifier must not be Versioned().
func NewUnversionedPreRelease(classifier PreReleaseClassifier) (PreRelease, error) {
	if !classifier.Valid() {
		return PreRelease{}, &verrors.ValidationError{Type: "PreRelease", Field: "classifier", Reason: "unrecognised classifier", Value: int(classifier)}
	}
	if classifier.Versioned() {
		return PreRelease{}, &verrors.ValidationError{Type: "PreRelease", Field: "classifier", Reason: "classifier is versioned and requires a number", Value: classifier.String()}
	}
	return PreRelease{classifier: classifier}, nil
}

// Classifier returns the PreReleaseClassifier component.
func (p PreRelease) Classifier() PreReleaseClassifier { return p.classifier }

// Number returns the PreReleaseNumber component and whether one is present.
func (p PreRelease) Number() (PreReleaseNumber, bool) { return p.number, p.hasNumber }

// String renders p as "classifier" (non-versioned) or "classifier.number"
// (versioned).
func (p PreRelease) String() string {
	if p.hasNumber {
		return p.classifier.String() + "." + p.number.String()
	}
	return p.classifier.String()
}

// Compare orders p against other by classifier ordinal, then by number.
// Returns -1, 0, or 1.
func (p PreRelease) Compare(other PreRelease) int {
	if p.classifier != other.classifier {
		if p.classifier < other.classifier {
			return -1
		}
		return 1
	}
	if p.hasNumber && other.hasNumber {
		switch {
		case p.number < other.number:
			return -1
		case p.number > other.number:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// Equal reports whether p and other render identically.
func (p PreRelease) Equal(other PreRelease) bool { return p.Compare(other) == 0 }
