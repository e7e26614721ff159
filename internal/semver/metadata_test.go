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

func TestNewMetadata_RejectsEmpty(t *testing.T) {
	if _, err := NewMetadata(nil); err == nil {
		t.Fatal("expected error for empty metadata")
	}
}

func TestNewMetadata_RejectsInvalidIdentifier(t *testing.T) {
	if _, err := NewMetadata([]string{"br anch"}); err == nil {
		t.Fatal("expected error for identifier containing a space")
	}
}

func TestMetadata_String(t *testing.T) {
	md, err := NewMetadata([]string{"branch-main", "commits3", "sha1234567890abcdef"})
	if err != nil {
		t.Fatal(err)
	}
	want := "branch-main.commits3.sha1234567890abcdef"
	if got := md.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestMetadata_StringExtended_TruncatesSHA(t *testing.T) {
	md, err := NewMetadata([]string{"pr42", "branchmain", "commits3", "sha1234567890abcdef", "dirty"})
	if err != nil {
		t.Fatal(err)
	}
	want := "pr42.branchmain.commits3.sha1234567.dirty"
	if got := md.StringExtended(); got != want {
		t.Fatalf("StringExtended() = %q, want %q", got, want)
	}
	// Full, untruncated form must still be available for serialization.
	full := "pr42.branchmain.commits3.sha1234567890abcdef.dirty"
	if got := md.String(); got != full {
		t.Fatalf("String() = %q, want %q", got, full)
	}
}

func TestMetadata_StringExtended_ShortShaNotTruncated(t *testing.T) {
	md, err := NewMetadata([]string{"sha123"})
	if err != nil {
		t.Fatal(err)
	}
	if got := md.StringExtended(); got != "sha123" {
		t.Fatalf("StringExtended() = %q, want %q (short sha untouched)", got, "sha123")
	}
}

func TestMetadata_StringExtended_ExactlyTenCharsNotTruncated(t *testing.T) {
	// "sha" + 7 hex digits = 10 chars exactly; truncation only applies to
	// identifiers strictly longer than that.
	md, err := NewMetadata([]string{"sha1234567"})
	if err != nil {
		t.Fatal(err)
	}
	if got := md.StringExtended(); got != "sha1234567" {
		t.Fatalf("StringExtended() = %q, want %q (10-char sha left untouched)", got, "sha1234567")
	}
}

func TestMetadata_Equal(t *testing.T) {
	a, _ := NewMetadata([]string{"a", "b"})
	b, _ := NewMetadata([]string{"a", "b"})
	c, _ := NewMetadata([]string{"b", "a"})
	if !a.Equal(b) {
		t.Fatal("expected equal metadata")
	}
	if a.Equal(c) {
		t.Fatal("order must matter for equality")
	}
}
