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

package directive

import "dirpx.dev/verex/internal/semver"

// Kind identifies which form of Keyword a directive produced.
type Kind int

const (
	// IgnoreSelf marks the commit that carries it as excluded from
	// resolution entirely ("version: ignore").
	IgnoreSelf Kind = iota
	// IgnoreCommits excludes an explicit list of commits, identified by sha
	// prefix, from resolution ("version: ignore: <sha>[, <sha>]*").
	IgnoreCommits
	// IgnoreRange excludes every commit between two shas, inclusive
	// ("version: ignore: <sha>..<sha>").
	IgnoreRange
	// IgnoreMerged marks a merge commit's merged-in commits as excluded
	// from resolution ("version: ignore-merged").
	IgnoreMerged
	// MajorChange requests a relative major bump ("version: major",
	// "version: breaking", "breaking: ...", "major: ...").
	MajorChange
	// MinorChange requests a relative minor bump ("version: minor",
	// "version: feature", "version: feat", "minor: ...", "feat: ...",
	// "feature: ...").
	MinorChange
	// MajorSet requests an absolute major value ("version: major: <N>").
	MajorSet
	// MinorSet requests an absolute minor value ("version: minor: <N>").
	MinorSet
	// PatchSet requests an absolute patch value ("version: patch: <N>").
	PatchSet
	// TargetSet requests a target version ("target: <semver>"); the
	// resolver keeps only its core, and only if it passes Rules A-C.
	TargetSet
)

// String names k for diagnostics and logging.
func (k Kind) String() string {
	switch k {
	case IgnoreSelf:
		return "IgnoreSelf"
	case IgnoreCommits:
		return "IgnoreCommits"
	case IgnoreRange:
		return "IgnoreRange"
	case IgnoreMerged:
		return "IgnoreMerged"
	case MajorChange:
		return "MajorChange"
	case MinorChange:
		return "MinorChange"
	case MajorSet:
		return "MajorSet"
	case MinorSet:
		return "MinorSet"
	case PatchSet:
		return "PatchSet"
	case TargetSet:
		return "TargetSet"
	default:
		return "Unknown"
	}
}

// Keyword is a single directive recognized inside a commit message.
//
// Only the fields relevant to Kind are populated; it is a tagged union
// expressed as a struct rather than an interface so that callers can switch
// on Kind without a type assertion, matching spec.md §3's Keyword sum type.
type Keyword struct {
	Kind Kind

	// ShaPrefixes holds the sha prefixes named by an IgnoreCommits
	// directive, in the order they appeared.
	ShaPrefixes []string

	// RangeFrom and RangeTo hold the two sha prefixes of an IgnoreRange
	// directive.
	RangeFrom string
	RangeTo   string

	// Major, Minor, and Patch hold the absolute value carried by a
	// MajorSet, MinorSet, or PatchSet directive respectively.
	Major semver.MajorVersion
	Minor semver.MinorVersion
	Patch semver.PatchNumber

	// Target holds the pinned version carried by a TargetSet directive.
	Target semver.Version
}
