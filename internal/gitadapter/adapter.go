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

package gitadapter

import "dirpx.dev/verex/internal/semver"

// Adapter is the read-only Git surface the resolver requires. Every
// operation returns a value or one of GitCommandFailed, NotAGitRepository,
// InvalidShaLength, or Other.
//
// Implementations must tolerate being rooted at any subdirectory within a
// repository's working tree, and must never mutate the worktree — not even
// transient lock files.
type Adapter interface {
	// ResolveRev resolves rev (a branch, tag, or any revision go-git accepts)
	// to its full 40-character lowercase commit sha.
	ResolveRev(rev string) (semver.CommitSha, error)

	// Abbreviate produces a hex abbreviation of sha exactly length
	// characters long. length must be in [7, 40].
	Abbreviate(sha semver.CommitSha, length int) (string, error)

	// ListAllTags returns every annotated tag in the repository, parsed as
	// Tag values. Lightweight tags and non-SemVer tag names are silently
	// ignored.
	ListAllTags() ([]semver.Tag, error)

	// ReachableTags returns the subset of ListAllTags whose commit is an
	// ancestor of from (inclusive).
	ReachableTags(from semver.CommitSha) ([]semver.Tag, error)

	// IsWorkingDirectoryClean reports true iff no tracked file differs from
	// HEAD and no untracked, non-ignored files exist.
	IsWorkingDirectoryClean() (bool, error)

	// CurrentBranch returns the short branch name, or "none" when HEAD is
	// detached.
	CurrentBranch() (string, error)

	// CommitsSince returns every commit reachable from to that is not
	// reachable from fromExclusive (or every commit in history, when
	// fromExclusive is the zero value), traversing the full merge graph.
	CommitsSince(to semver.CommitSha, fromExclusive semver.CommitSha) ([]semver.Commit, error)

	// CountCommitsSince returns the first-parent, non-merge count of
	// commits between to and fromExclusive (or the zero value for all
	// history).
	CountCommitsSince(to semver.CommitSha, fromExclusive semver.CommitSha) (int, error)
}
