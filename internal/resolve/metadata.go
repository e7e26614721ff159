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
	"fmt"
	"strings"

	"dirpx.dev/verex/internal/semver"
)

// metadataInputs is everything buildMetadata needs to assemble the
// canonical identifier list, already resolved by the orchestrator: no
// Git access happens here.
type metadataInputs struct {
	prNumber *int
	branch   string
	commits  int
	sha      string
	dirty    bool
}

// normalizeBranch implements spec.md §4.6's branch-normalisation
// algorithm: lowercase, collapse every run of characters outside
// [0-9a-z] to a single '-', trim leading/trailing '-', and substitute
// "detached" for an empty result.
//
// normalizeBranch is idempotent: normalizeBranch(normalizeBranch(x)) ==
// normalizeBranch(x), since its own output is already all lowercase
// alphanumerics and interior single hyphens.
func normalizeBranch(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	prevDash := false
	for _, r := range lower {
		switch {
		case (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z'):
			b.WriteRune(r)
			prevDash = false
		case !prevDash:
			b.WriteByte('-')
			prevDash = true
		}
	}
	result := strings.Trim(b.String(), "-")
	if result == "" {
		return "detached"
	}
	return result
}

// clampPRNumber clamps negative PR numbers to zero; spec.md §4.6 gives no
// meaning to a negative PR number, so treating it as absent-equivalent-zero
// rather than propagating the sign is the conservative choice.
func clampPRNumber(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// buildMetadata assembles the ordered identifier list
// [pr<N>?, branch<X>, commits<N>, sha<hex>, dirty?] per spec.md §4.6. The
// branch and commits identifiers are always present; pr and dirty are
// conditional, but their positions in the sequence never shift when
// absent — pr is always first when present, dirty is always last.
func buildMetadata(in metadataInputs) (semver.Metadata, error) {
	var ids []string
	if in.prNumber != nil {
		ids = append(ids, fmt.Sprintf("pr%d", clampPRNumber(*in.prNumber)))
	}
	ids = append(ids, "branch"+normalizeBranch(in.branch))
	ids = append(ids, fmt.Sprintf("commits%d", in.commits))
	ids = append(ids, "sha"+in.sha)
	if in.dirty {
		ids = append(ids, "dirty")
	}
	return semver.NewMetadata(ids)
}
