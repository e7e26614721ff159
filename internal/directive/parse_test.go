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

import "testing"

func TestParseKeywords_IgnoreSelf(t *testing.T) {
	kws := ParseKeywords("chore: drop debug print\n\nversion: ignore")
	requireSingle(t, kws, IgnoreSelf)
}

func TestParseKeywords_IgnoreMerged(t *testing.T) {
	kws := ParseKeywords("Merge pull request #42\n\nversion: ignore-merged")
	requireSingle(t, kws, IgnoreMerged)
}

func TestParseKeywords_IgnoreCommitsList(t *testing.T) {
	kws := ParseKeywords("version: ignore: abc1234, DEF5678")
	kw := requireSingle(t, kws, IgnoreCommits)
	if len(kw.ShaPrefixes) != 2 || kw.ShaPrefixes[0] != "abc1234" || kw.ShaPrefixes[1] != "def5678" {
		t.Fatalf("ShaPrefixes = %v, want [abc1234 def5678]", kw.ShaPrefixes)
	}
}

func TestParseKeywords_IgnoreRange(t *testing.T) {
	kws := ParseKeywords("version: ignore: abc1234..def5678")
	kw := requireSingle(t, kws, IgnoreRange)
	if kw.RangeFrom != "abc1234" || kw.RangeTo != "def5678" {
		t.Fatalf("range = %s..%s, want abc1234..def5678", kw.RangeFrom, kw.RangeTo)
	}
}

func TestParseKeywords_RelativeMajor(t *testing.T) {
	for _, msg := range []string{"version: major", "version: breaking", "breaking: remove old API"} {
		t.Run(msg, func(t *testing.T) {
			requireSingle(t, ParseKeywords(msg), MajorChange)
		})
	}
}

func TestParseKeywords_RelativeMinor(t *testing.T) {
	for _, msg := range []string{"version: minor", "version: feature", "version: feat", "feat: add widget", "feature: add widget", "minor: add widget"} {
		t.Run(msg, func(t *testing.T) {
			requireSingle(t, ParseKeywords(msg), MinorChange)
		})
	}
}

func TestParseKeywords_RelativePatchIsNoOp(t *testing.T) {
	for _, msg := range []string{"version: patch", "version: fix", "fix: off by one", "patch: tweak"} {
		t.Run(msg, func(t *testing.T) {
			kws := ParseKeywords(msg)
			if len(kws) != 0 {
				t.Fatalf("expected no keywords for relative patch/fix, got %v", kws)
			}
		})
	}
}

func TestParseKeywords_ShorthandRequiresNonEmptyText(t *testing.T) {
	kws := ParseKeywords("major:")
	if len(kws) != 0 {
		t.Fatalf("expected no keyword for bare shorthand with no text, got %v", kws)
	}
}

func TestParseKeywords_AbsoluteSet(t *testing.T) {
	kws := ParseKeywords("version: major: 7")
	kw := requireSingle(t, kws, MajorSet)
	if kw.Major.Int() != 7 {
		t.Fatalf("Major = %d, want 7", kw.Major.Int())
	}

	kws = ParseKeywords("version: patch: 3")
	kw = requireSingle(t, kws, PatchSet)
	if kw.Patch.Int() != 3 {
		t.Fatalf("Patch = %d, want 3", kw.Patch.Int())
	}
}

func TestParseKeywords_TargetSet(t *testing.T) {
	kws := ParseKeywords("target: v2.5.0-rc.1")
	kw := requireSingle(t, kws, TargetSet)
	if kw.Target.String() != "2.5.0-rc.1" {
		t.Fatalf("Target = %q, want %q", kw.Target.String(), "2.5.0-rc.1")
	}
}

func TestParseKeywords_RespectsTokenBoundary(t *testing.T) {
	kws := ParseKeywords("preversion: major")
	if len(kws) != 0 {
		t.Fatalf("expected no keyword when directive is preceded by a word character, got %v", kws)
	}
}

func TestParseKeywords_CaseInsensitive(t *testing.T) {
	requireSingle(t, ParseKeywords("VERSION: MAJOR"), MajorChange)
	requireSingle(t, ParseKeywords("Version: Ignore"), IgnoreSelf)
}

func TestParseKeywords_MultipleDirectivesInOneMessage(t *testing.T) {
	kws := ParseKeywords("feat: add widget\n\nversion: ignore: abc1234")
	if len(kws) != 2 {
		t.Fatalf("expected 2 keywords, got %d (%v)", len(kws), kws)
	}
	if kws[0].Kind != MinorChange || kws[1].Kind != IgnoreCommits {
		t.Fatalf("unexpected kinds: %v, %v", kws[0].Kind, kws[1].Kind)
	}
}

func TestParseKeywords_NoDirectivesInPlainMessage(t *testing.T) {
	kws := ParseKeywords("just a regular commit message, nothing special here")
	if len(kws) != 0 {
		t.Fatalf("expected no keywords, got %v", kws)
	}
}

func requireSingle(t *testing.T, kws []Keyword, want Kind) Keyword {
	t.Helper()
	if len(kws) != 1 {
		t.Fatalf("expected exactly 1 keyword, got %d (%v)", len(kws), kws)
	}
	if kws[0].Kind != want {
		t.Fatalf("Kind = %v, want %v", kws[0].Kind, want)
	}
	return kws[0]
}
