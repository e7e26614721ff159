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
	"strconv"
	"strings"
)

// ParseErrorKind distinguishes the four ways a version string can fail to
// parse, mirroring the sum type spec.md describes: ParseError { Invalid-
// VersionFormat | InvalidNumericField{field,value} |
// UnrecognizedPreRelease{identifiers} | InvalidMetadata{identifiers} }.
type ParseErrorKind int

const (
	// InvalidVersionFormat means the input does not match the version
	// grammar at all (missing core components, stray characters, and so
	// on).
	InvalidVersionFormat ParseErrorKind = iota
	// InvalidNumericField means a core component (major, minor, patch)
	// overflowed MaxNumericField, or an all-digit pre-release identifier had
	// leading zeros or overflowed it. Leading zeros in the core fail the
	// grammar instead and are reported as InvalidVersionFormat.
	InvalidNumericField
	// UnrecognizedPreRelease means the pre-release identifiers were
	// syntactically valid but did not match any classifier resolution
	// rule.
	UnrecognizedPreRelease
	// InvalidMetadata means a build-metadata identifier violated the
	// [0-9A-Za-z-]+ grammar.
	InvalidMetadata
)

// ParseError reports why ParseVersion failed to interpret a version string.
type ParseError struct {
	Kind ParseErrorKind

	// Input is the original string passed to ParseVersion.
	Input string

	// Field names the offending numeric component, set only for
	// InvalidNumericField ("major", "minor", "patch", or "preRelease").
	Field string

	// Value is the offending raw numeric text, set only for
	// InvalidNumericField.
	Value string

	// Identifiers is the raw identifier list that failed classifier
	// resolution or metadata validation, set for UnrecognizedPreRelease and
	// InvalidMetadata.
	Identifiers []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidVersionFormat:
		return "verex: invalid version format: " + e.Input
	case InvalidNumericField:
		return "verex: invalid numeric field " + e.Field + ": " + e.Value
	case UnrecognizedPreRelease:
		return "verex: unrecognized pre-release identifiers: " + strings.Join(e.Identifiers, ".")
	case InvalidMetadata:
		return "verex: invalid metadata identifiers: " + strings.Join(e.Identifiers, ".")
	default:
		return "verex: invalid version: " + e.Input
	}
}

// versionPattern implements the grammar from spec.md §4.2:
//
//	version     := ('v'|'V')? core ('-' preRelease)? ('+' metadata)?
//	core        := numeric '.' numeric '.' numeric
//	numeric     := '0' | [1-9][0-9]*
//	preRelease  := ident ('.' ident)*
//	metadata    := ident ('.' ident)*
//	ident       := [0-9A-Za-z-]+
//
// Leading-zero rejection for the core numerics is enforced structurally by
// the numeric alternation; pre-release numeric identifiers are checked
// separately since a pre-release identifier may be non-numeric.
var versionPattern = regexp.MustCompile(
	`^[vV]?(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`,
)

// reconcilePattern recognises a single raw pre-release identifier made of a
// non-empty run of letters/hyphens immediately followed by a non-empty run
// of digits, e.g. "rc10" or "alpha5".
var reconcilePattern = regexp.MustCompile(`^([A-Za-z-]+)([0-9]+)$`)

// ClassifierResolver maps a (possibly reconciled) pre-release identifier
// list to a PreRelease. Implementations report ok=false when the identifier
// list does not match any recognised form, in which case ParseVersion
// reports UnrecognizedPreRelease.
//
// This abstraction exists so that consumers with non-default identifier
// schemes can substitute their own mapping via ParseVersionWithResolver;
// ParseVersion uses DefaultClassifierResolver.
type ClassifierResolver interface {
	Resolve(identifiers []string) (PreRelease, bool)
}

// defaultClassifierResolver implements the closed default mapping from
// spec.md §4.2:
//   - one identifier matching a non-versioned classifier alias -> PreRelease(classifier, none)
//   - exactly two identifiers, first a versioned classifier alias and second a positive integer -> PreRelease(classifier, number)
//   - everything else -> not ok
type defaultClassifierResolver struct{}

// DefaultClassifierResolver is the closed classifier mapping ParseVersion
// uses unless a caller supplies its own ClassifierResolver.
var DefaultClassifierResolver ClassifierResolver = defaultClassifierResolver{}

func (defaultClassifierResolver) Resolve(identifiers []string) (PreRelease, bool) {
	switch len(identifiers) {
	case 1:
		classifier, err := ParsePreReleaseClassifier(identifiers[0])
		if err != nil || classifier.Versioned() {
			return PreRelease{}, false
		}
		pr, err := NewUnversionedPreRelease(classifier)
		if err != nil {
			return PreRelease{}, false
		}
		return pr, true
	case 2:
		classifier, err := ParsePreReleaseClassifier(identifiers[0])
		if err != nil || !classifier.Versioned() {
			return PreRelease{}, false
		}
		n, err := strconv.Atoi(identifiers[1])
		if err != nil || n < 1 {
			return PreRelease{}, false
		}
		number, err := NewPreReleaseNumber(n)
		if err != nil {
			return PreRelease{}, false
		}
		pr, err := NewPreRelease(classifier, number)
		if err != nil {
			return PreRelease{}, false
		}
		return pr, true
	default:
		return PreRelease{}, false
	}
}

// ParseVersion parses s per the grammar in spec.md §4.2 using
// DefaultClassifierResolver. See ParseVersionWithResolver to supply a
// different ClassifierResolver.
func ParseVersion(s string) (Version, error) {
	return ParseVersionWithResolver(s, DefaultClassifierResolver)
}

// ParseVersionWithResolver parses s, delegating pre-release identifier
// resolution to resolver.
//
// An optional leading 'v'/'V' is stripped. Numeric core components reject
// leading zeros and overflow beyond MaxNumericField. A lone pre-release
// identifier combining a letter/hyphen run with a trailing digit run (e.g.
// "rc10") is split into two identifiers before resolution is attempted,
// per the identifier-reconciliation rule; reconciliation only applies when
// exactly one raw identifier was supplied.
func ParseVersionWithResolver(s string, resolver ClassifierResolver) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &ParseError{Kind: InvalidVersionFormat, Input: s}
	}

	major, err := parseNumericField("major", m[1])
	if err != nil {
		return Version{}, err
	}
	minor, err := parseNumericField("minor", m[2])
	if err != nil {
		return Version{}, err
	}
	patch, err := parseNumericField("patch", m[3])
	if err != nil {
		return Version{}, err
	}

	majorV, verr := NewMajorVersion(major)
	if verr != nil {
		return Version{}, verr
	}
	minorV, verr := NewMinorVersion(minor)
	if verr != nil {
		return Version{}, verr
	}
	patchV, verr := NewPatchNumber(patch)
	if verr != nil {
		return Version{}, verr
	}

	var preRelease *PreRelease
	if m[4] != "" {
		identifiers := strings.Split(m[4], ".")
		identifiers = reconcileIdentifiers(identifiers)
		if err := validateNumericPreReleaseIdentifiers(identifiers); err != nil {
			return Version{}, err
		}
		pr, ok := resolver.Resolve(identifiers)
		if !ok {
			return Version{}, &ParseError{Kind: UnrecognizedPreRelease, Input: s, Identifiers: identifiers}
		}
		preRelease = &pr
	}

	var metadata *Metadata
	if m[5] != "" {
		identifiers := strings.Split(m[5], ".")
		md, err := NewMetadata(identifiers)
		if err != nil {
			return Version{}, &ParseError{Kind: InvalidMetadata, Input: s, Identifiers: identifiers}
		}
		metadata = &md
	}

	return NewVersion(majorV, minorV, patchV, preRelease, metadata), nil
}

// parseNumericField converts a numeric core component to int, reporting
// overflow beyond MaxNumericField as InvalidNumericField.
func parseNumericField(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n > MaxNumericField {
		return 0, &ParseError{Kind: InvalidNumericField, Field: field, Value: raw}
	}
	return n, nil
}

// reconcileIdentifiers applies the single-identifier letters+digits split
// rule (e.g. "rc10" -> "rc", "10"). Identifier lists of any other shape are
// returned unchanged.
func reconcileIdentifiers(identifiers []string) []string {
	if len(identifiers) != 1 {
		return identifiers
	}
	m := reconcilePattern.FindStringSubmatch(identifiers[0])
	if m == nil {
		return identifiers
	}
	return []string{m[1], m[2]}
}

// validateNumericPreReleaseIdentifiers rejects all-digit pre-release
// identifiers with leading zeros (length > 1), per spec.md §4.2, and those
// whose value overflows MaxNumericField.
func validateNumericPreReleaseIdentifiers(identifiers []string) error {
	for _, id := range identifiers {
		if !isAllDigits(id) {
			continue
		}
		if len(id) > 1 && id[0] == '0' {
			return &ParseError{Kind: InvalidNumericField, Field: "preRelease", Value: id}
		}
		if n, err := strconv.Atoi(id); err != nil || n > MaxNumericField {
			return &ParseError{Kind: InvalidNumericField, Field: "preRelease", Value: id}
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
