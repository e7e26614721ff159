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
	"testing"
)

func mustVersion(t *testing.T, s string) Version {
	t.Helper()
	v, err := ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q) error = %v", s, err)
	}
	return v
}

func TestVersion_CompareOrdering(t *testing.T) {
	// 1.0.0-dev.1 < 1.0.0-alpha.1 < 1.0.0-alpha.2 < 1.0.0-beta.1 < 1.0.0-beta.2 < 1.0.0-rc.1 < 1.0.0
	ordered := []string{
		"1.0.0-dev.1",
		"1.0.0-alpha.1",
		"1.0.0-alpha.2",
		"1.0.0-beta.1",
		"1.0.0-beta.2",
		"1.0.0-rc.1",
		"1.0.0",
	}
	for i := 1; i < len(ordered); i++ {
		a := mustVersion(t, ordered[i-1])
		b := mustVersion(t, ordered[i])
		if !a.Less(b) {
			t.Fatalf("%s should be < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestVersion_CoreOrdering(t *testing.T) {
	if !mustVersion(t, "1.0.0").Less(mustVersion(t, "2.0.0")) {
		t.Fatal("1.0.0 should be < 2.0.0")
	}
	if !mustVersion(t, "2.0.0").Less(mustVersion(t, "2.1.0")) {
		t.Fatal("2.0.0 should be < 2.1.0")
	}
	if !mustVersion(t, "2.1.0").Less(mustVersion(t, "2.1.1")) {
		t.Fatal("2.1.0 should be < 2.1.1")
	}
}

func TestVersion_MetadataIgnoredForOrdering(t *testing.T) {
	a := mustVersion(t, "1.0.0+build1")
	b := mustVersion(t, "1.0.0+build2")
	if !a.Equal(b) {
		t.Fatal("versions differing only in metadata must be equal")
	}
}

func TestVersion_String_ExcludesMetadata(t *testing.T) {
	v := mustVersion(t, "1.2.3-rc.1+sha1234567890abcdef")
	if v.String() != "1.2.3-rc.1" {
		t.Fatalf("String() = %q, want %q", v.String(), "1.2.3-rc.1")
	}
	if v.StringExtended() != "1.2.3-rc.1+sha1234567" {
		t.Fatalf("StringExtended() = %q, want %q", v.StringExtended(), "1.2.3-rc.1+sha1234567")
	}
	if v.StringFull() != "1.2.3-rc.1+sha1234567890abcdef" {
		t.Fatalf("StringFull() = %q, want untruncated metadata", v.StringFull())
	}
}

func TestVersion_NextOperations(t *testing.T) {
	v := mustVersion(t, "1.2.3")

	nextMajor, err := v.NextMajor()
	if err != nil {
		t.Fatal(err)
	}
	if nextMajor.String() != "2.0.0" {
		t.Fatalf("NextMajor() = %q, want %q", nextMajor.String(), "2.0.0")
	}

	nextMinor, err := v.NextMinor()
	if err != nil {
		t.Fatal(err)
	}
	if nextMinor.String() != "1.3.0" {
		t.Fatalf("NextMinor() = %q, want %q", nextMinor.String(), "1.3.0")
	}

	nextPatch, err := v.NextPatch()
	if err != nil {
		t.Fatal(err)
	}
	if nextPatch.String() != "1.2.4" {
		t.Fatalf("NextPatch() = %q, want %q", nextPatch.String(), "1.2.4")
	}
}

func TestVersion_IsFinal(t *testing.T) {
	if !mustVersion(t, "1.0.0").IsFinal() {
		t.Fatal("1.0.0 should be final")
	}
	if mustVersion(t, "1.0.0-rc.1").IsFinal() {
		t.Fatal("1.0.0-rc.1 should not be final")
	}
}

func TestVersion_JSONRoundTrip(t *testing.T) {
	v := mustVersion(t, "1.2.3-beta.4+branchmain.commits2")
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var got Version
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(v) || got.StringFull() != v.StringFull() {
		t.Fatalf("round trip = %q, want %q", got.StringFull(), v.StringFull())
	}
}

func TestVersion_RoundTripFullRendering(t *testing.T) {
	// Testable property from spec.md §8: parsing v.renderExtended() yields a
	// value equal to v, for well-formed versions (using StringFull, the
	// untruncated metadata form, since cosmetic truncation is UI-only and
	// must never be the form that gets persisted or round-tripped).
	v := mustVersion(t, "3.4.5-milestone.2+prefab.commits9")
	reparsed := mustVersion(t, v.StringFull())
	if !reparsed.Equal(v) {
		t.Fatalf("round trip mismatch: %q vs %q", reparsed.StringFull(), v.StringFull())
	}
}

func TestVersion_StringFull_NeverTruncatesSHA(t *testing.T) {
	v := mustVersion(t, "1.0.0+sha1234567890abcdef")
	if v.StringFull() != "1.0.0+sha1234567890abcdef" {
		t.Fatalf("StringFull() = %q, want untruncated", v.StringFull())
	}
}
