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

import "testing"

func TestNewPreRelease_RejectsNonVersionedClassifier(t *testing.T) {
	n, _ := NewPreReleaseNumber(1)
	if _, err := NewPreRelease(Snapshot, n); err == nil {
		t.Fatal("expected error: Snapshot is not versioned")
	}
}

func TestNewUnversionedPreRelease_RejectsVersionedClassifier(t *testing.T) {
	if _, err := NewUnversionedPreRelease(Alpha); err == nil {
		t.Fatal("expected error: Alpha requires a number")
	}
}

func TestPreRelease_String(t *testing.T) {
	n, _ := NewPreReleaseNumber(2)
	pr, err := NewPreRelease(ReleaseCandidate, n)
	if err != nil {
		t.Fatal(err)
	}
	if pr.String() != "rc.2" {
		t.Fatalf("String() = %q, want %q", pr.String(), "rc.2")
	}

	snap, err := NewUnversionedPreRelease(Snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if snap.String() != "snapshot" {
		t.Fatalf("String() = %q, want %q", snap.String(), "snapshot")
	}
}

func TestPreRelease_Compare(t *testing.T) {
	one, _ := NewPreReleaseNumber(1)
	two, _ := NewPreReleaseNumber(2)

	alphaOne, _ := NewPreRelease(Alpha, one)
	alphaTwo, _ := NewPreRelease(Alpha, two)
	betaOne, _ := NewPreRelease(Beta, one)

	if alphaOne.Compare(alphaTwo) >= 0 {
		t.Fatal("alpha.1 should be < alpha.2")
	}
	if alphaTwo.Compare(betaOne) >= 0 {
		t.Fatal("alpha.2 should be < beta.1 (classifier ordinal wins)")
	}
	if !alphaOne.Equal(alphaOne) {
		t.Fatal("alpha.1 should equal itself")
	}
}
