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

package resolve

import (
	"testing"

	"dirpx.dev/verex/internal/directive"
	"dirpx.dev/verex/internal/semver"
)

func mustVersion(t *testing.T, s string) semver.Version {
	t.Helper()
	v, err := semver.ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", s, err)
	}
	return v
}

func TestReduceTargetCore_NoKeywords_UsesDefault(t *testing.T) {
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}

	got, err := reduceTargetCore(base, nil, state, def)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(def) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, def)
	}
}

func TestReduceTargetCore_TargetSet_ValidBeatsDefault(t *testing.T) {
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.TargetSet, Target: mustVersion(t, "2.0.0")}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "2.0.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, want)
	}
}

func TestReduceTargetCore_TargetSet_InvalidFallsBackToDefault(t *testing.T) {
	// Scenario 3: target: 1.0.0 against a final base of 1.0.0 fails Rule A
	// (not strictly greater), so the default patch bump applies instead.
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.TargetSet, Target: mustVersion(t, "1.0.0")}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(def) {
		t.Fatalf("reduceTargetCore = %s, want fallback to default %s", got, def)
	}
}

func TestReduceTargetCore_TargetSet_TieBreakHighest(t *testing.T) {
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{
		{Kind: directive.TargetSet, Target: mustVersion(t, "2.0.0")},
		{Kind: directive.TargetSet, Target: mustVersion(t, "3.0.0")},
		{Kind: directive.TargetSet, Target: mustVersion(t, "2.5.0")},
	}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "3.0.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want highest surviving target %s", got, want)
	}
}

func TestReduceTargetCore_TargetSet_PreReleaseBaseAllowsEqual(t *testing.T) {
	// Rule B: pre-release base allows target core == base core.
	base := mustVersion(t, "1.0.0-rc.1").Core()
	def := base
	state := reachableTagState{hasReachable: true, reachableFinal: false, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.TargetSet, Target: mustVersion(t, "1.0.0")}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(base) {
		t.Fatalf("reduceTargetCore = %s, want equal-to-base target %s accepted under Rule B", got, base)
	}
}

func TestReduceTargetCore_TargetSet_CoreOnly(t *testing.T) {
	// Rule F: pre-release/metadata on a TargetSet value is discarded.
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.TargetSet, Target: mustVersion(t, "2.0.0-rc.1+meta")}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	if _, hasPR := got.PreRelease(); hasPR {
		t.Fatalf("reduceTargetCore result %s retained a pre-release, want core only", got)
	}
	want := mustVersion(t, "2.0.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, want)
	}
}

func TestReduceTargetCore_AbsoluteSets_ComponentWiseWithReset(t *testing.T) {
	base := mustVersion(t, "1.2.3")
	def := mustVersion(t, "1.2.4")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}

	major, _ := semver.NewMajorVersion(5)
	keywords := []directive.Keyword{{Kind: directive.MajorSet, Major: major}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "5.0.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s (minor/patch reset)", got, want)
	}
}

func TestReduceTargetCore_AbsoluteSets_HighestValueWins(t *testing.T) {
	base := mustVersion(t, "1.0.0")
	def := mustVersion(t, "1.0.1")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}

	minorLow, _ := semver.NewMinorVersion(2)
	minorHigh, _ := semver.NewMinorVersion(9)
	keywords := []directive.Keyword{
		{Kind: directive.MinorSet, Minor: minorLow},
		{Kind: directive.MinorSet, Minor: minorHigh},
	}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "1.9.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, want)
	}
}

func TestReduceTargetCore_RelativeChange_MajorBeatsMinor(t *testing.T) {
	base := mustVersion(t, "1.2.3")
	def := mustVersion(t, "1.2.4")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.MinorChange}, {Kind: directive.MajorChange}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "2.0.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, want)
	}
}

func TestReduceTargetCore_RelativeMinor(t *testing.T) {
	base := mustVersion(t, "1.2.3")
	def := mustVersion(t, "1.2.4")
	state := reachableTagState{hasReachable: true, reachableFinal: true, reachableCore: base}
	keywords := []directive.Keyword{{Kind: directive.MinorChange}}

	got, err := reduceTargetCore(base, keywords, state, def)
	if err != nil {
		t.Fatal(err)
	}
	want := mustVersion(t, "1.3.0")
	if !got.Equal(want) {
		t.Fatalf("reduceTargetCore = %s, want %s", got, want)
	}
}

func TestValidateTargetCore_RuleC_NoReachableTag_FinalExistsRepoWide(t *testing.T) {
	state := reachableTagState{repoHasFinal: true, highestFinalCore: mustVersion(t, "4.3.0")}

	if validateTargetCore(mustVersion(t, "4.3.0"), state) {
		t.Fatal("equal-to-final core must fail Rule C when no reachable tag exists")
	}
	if !validateTargetCore(mustVersion(t, "5.0.0"), state) {
		t.Fatal("strictly greater core must pass Rule C")
	}
}

func TestValidateTargetCore_RuleC_OnlyPreReleaseRepoWide(t *testing.T) {
	state := reachableTagState{repoHasPreRelease: true, highestPreReleaseCore: mustVersion(t, "1.0.0")}

	if !validateTargetCore(mustVersion(t, "1.0.0"), state) {
		t.Fatal("equal-to-highest-prerelease core must pass Rule C (>=)")
	}
	if validateTargetCore(mustVersion(t, "0.9.0"), state) {
		t.Fatal("lesser core must fail Rule C")
	}
}

func TestValidateTargetCore_NoTagsAnywhere(t *testing.T) {
	if !validateTargetCore(mustVersion(t, "0.0.1"), reachableTagState{}) {
		t.Fatal("with no tags anywhere, any core should validate")
	}
}
