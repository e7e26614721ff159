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

import (
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/verex/internal/semver"
)

// ignoreListRex matches a comma-separated list of sha prefixes (7-40 hex
// digits), tolerating surrounding whitespace around each comma.
var (
	ignoreMergedRex = regexp.MustCompile(`^(?i)version\s*:\s*ignore-merged\b`)
	ignoreRangeRex  = regexp.MustCompile(`^(?i)version\s*:\s*ignore\s*:\s*([0-9a-fA-F]{7,40})\s*\.\.\s*([0-9a-fA-F]{7,40})`)
	ignoreListRex   = regexp.MustCompile(`^(?i)version\s*:\s*ignore\s*:\s*([0-9a-fA-F]{7,40}(?:\s*,\s*[0-9a-fA-F]{7,40})*)`)
	ignoreSelfRex   = regexp.MustCompile(`^(?i)version\s*:\s*ignore\b`)

	targetRex = regexp.MustCompile(`^(?i)target\s*:\s*([vV]?[0-9]+\.[0-9]+\.[0-9]+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)`)

	absSetRex = regexp.MustCompile(`^(?i)version\s*:\s*(major|breaking|minor|feature|feat|patch|fix)\s*:\s*([0-9]+)`)
	relRex    = regexp.MustCompile(`^(?i)version\s*:\s*(major|breaking|minor|feature|feat|patch|fix)\b`)

	shorthandRex = regexp.MustCompile(`^(?i)(breaking|major|feat|feature|minor|fix|patch)\s*:\s*`)
)

// ParseKeywords scans message for every recognized directive and returns the
// Keywords it produced, in the order they occur. Unrecognized text, and
// directives whose <comp> resolves to a relative patch/fix (a no-op, since
// patch is the default bump — see spec §9), produce no Keyword but are still
// consumed so they are not reinterpreted as a different directive form.
//
// A directive is only recognized when it is not immediately preceded by an
// alphanumeric character or a hyphen, so that "preversion: major" does not
// match "version: major" as a substring.
func ParseKeywords(message string) []Keyword {
	var keywords []Keyword
	i := 0
	for i < len(message) {
		if i > 0 && isTokenByte(message[i-1]) {
			i++
			continue
		}
		if kw, n, ok := matchDirectiveAt(message[i:]); ok {
			if kw != nil {
				keywords = append(keywords, *kw)
			}
			i += n
			continue
		}
		i++
	}
	return keywords
}

func isTokenByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '-'
}

// matchDirectiveAt tries every directive form, in priority order, anchored
// to the start of s. It reports the Keyword produced (nil for a recognized
// but keyword-less directive), how many bytes of s the match consumed, and
// whether anything matched at all.
func matchDirectiveAt(s string) (*Keyword, int, bool) {
	if loc := ignoreMergedRex.FindStringIndex(s); loc != nil {
		return &Keyword{Kind: IgnoreMerged}, loc[1], true
	}
	if m := ignoreRangeRex.FindStringSubmatchIndex(s); m != nil {
		from := strings.ToLower(s[m[2]:m[3]])
		to := strings.ToLower(s[m[4]:m[5]])
		return &Keyword{Kind: IgnoreRange, RangeFrom: from, RangeTo: to}, m[1], true
	}
	if m := ignoreListRex.FindStringSubmatchIndex(s); m != nil {
		raw := s[m[2]:m[3]]
		var shas []string
		for _, part := range strings.Split(raw, ",") {
			shas = append(shas, strings.ToLower(strings.TrimSpace(part)))
		}
		return &Keyword{Kind: IgnoreCommits, ShaPrefixes: shas}, m[1], true
	}
	if loc := ignoreSelfRex.FindStringIndex(s); loc != nil {
		return &Keyword{Kind: IgnoreSelf}, loc[1], true
	}
	if m := targetRex.FindStringSubmatchIndex(s); m != nil {
		raw := s[m[2]:m[3]]
		v, err := semver.ParseVersion(raw)
		if err != nil {
			// Malformed target value: the "target:" token is still a
			// directive attempt, but an unparsable payload silently
			// drops the keyword rather than failing the whole scan.
			return nil, m[1], true
		}
		return &Keyword{Kind: TargetSet, Target: v}, m[1], true
	}
	if m := absSetRex.FindStringSubmatchIndex(s); m != nil {
		comp := canonicalComp(s[m[2]:m[3]])
		n, err := strconv.Atoi(s[m[4]:m[5]])
		if err != nil || n < 0 || n > semver.MaxNumericField {
			return nil, m[1], true
		}
		kw, ok := absoluteSetKeyword(comp, n)
		if !ok {
			return nil, m[1], true
		}
		return kw, m[1], true
	}
	if m := relRex.FindStringSubmatchIndex(s); m != nil {
		comp := canonicalComp(s[m[2]:m[3]])
		kw, ok := relativeChangeKeyword(comp)
		if !ok {
			return nil, m[1], true
		}
		return kw, m[1], true
	}
	if m := shorthandRex.FindStringSubmatchIndex(s); m != nil {
		end := m[1]
		if end >= len(s) || s[end] == ' ' || s[end] == '\t' || s[end] == '\n' || s[end] == '\r' {
			// No non-empty text follows the colon: not a directive.
			return nil, 0, false
		}
		comp := canonicalComp(s[m[2]:m[3]])
		kw, ok := relativeChangeKeyword(comp)
		if !ok {
			return nil, end, true
		}
		return kw, end, true
	}
	return nil, 0, false
}

// canonicalComp normalizes any of the spec's <comp> aliases to "major",
// "minor", or "patch".
func canonicalComp(raw string) string {
	switch strings.ToLower(raw) {
	case "major", "breaking":
		return "major"
	case "minor", "feature", "feat":
		return "minor"
	case "patch", "fix":
		return "patch"
	default:
		return ""
	}
}

// relativeChangeKeyword maps a canonical comp to its relative-bump Keyword.
// Patch deliberately produces no Keyword: patch is the resolver's default
// bump, so a relative "patch"/"fix" directive is a no-op.
func relativeChangeKeyword(comp string) (*Keyword, bool) {
	switch comp {
	case "major":
		return &Keyword{Kind: MajorChange}, true
	case "minor":
		return &Keyword{Kind: MinorChange}, true
	case "patch":
		return nil, true
	default:
		return nil, false
	}
}

// absoluteSetKeyword maps a canonical comp and absolute value to its
// Keyword. Unlike the relative form, an absolute patch directive always
// produces a PatchSet Keyword: it is an explicit override, not a no-op
// default.
func absoluteSetKeyword(comp string, n int) (*Keyword, bool) {
	switch comp {
	case "major":
		v, err := semver.NewMajorVersion(n)
		if err != nil {
			return nil, false
		}
		return &Keyword{Kind: MajorSet, Major: v}, true
	case "minor":
		v, err := semver.NewMinorVersion(n)
		if err != nil {
			return nil, false
		}
		return &Keyword{Kind: MinorSet, Minor: v}, true
	case "patch":
		v, err := semver.NewPatchNumber(n)
		if err != nil {
			return nil, false
		}
		return &Keyword{Kind: PatchSet, Patch: v}, true
	default:
		return nil, false
	}
}
