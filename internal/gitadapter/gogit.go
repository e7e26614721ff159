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

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"dirpx.dev/verex/internal/semver"
)

// GoGitAdapter implements Adapter on top of github.com/go-git/go-git/v5,
// requiring no "git" binary on PATH.
type GoGitAdapter struct {
	repo *git.Repository
}

// Open discovers and opens the repository containing path, walking upward
// to find a .git directory the way the native "git" CLI does, so the
// adapter tolerates being rooted at any subdirectory.
func Open(path string) (*GoGitAdapter, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &NotAGitRepository{Path: path}
		}
		return nil, &Other{Message: err.Error()}
	}
	return &GoGitAdapter{repo: repo}, nil
}

// ResolveRev implements Adapter.
func (a *GoGitAdapter) ResolveRev(rev string) (semver.CommitSha, error) {
	hash, err := a.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", &GitCommandFailed{Args: []string{"rev-parse", rev}, Stderr: err.Error()}
	}
	sha, err := semver.ParseCommitSha(hash.String())
	if err != nil {
		return "", &Other{Message: err.Error()}
	}
	return sha, nil
}

// Abbreviate implements Adapter.
func (a *GoGitAdapter) Abbreviate(sha semver.CommitSha, length int) (string, error) {
	if length < 7 || length > 40 {
		return "", &InvalidShaLength{Requested: length}
	}
	full := sha.String()
	if len(full) < length {
		return "", &Other{Message: "commit sha shorter than requested abbreviation length"}
	}
	return full[:length], nil
}

// ListAllTags implements Adapter. Only annotated tags whose name parses as
// a SemVer version are returned; lightweight tags and non-SemVer names are
// silently dropped.
func (a *GoGitAdapter) ListAllTags() ([]semver.Tag, error) {
	refs, err := a.repo.Tags()
	if err != nil {
		return nil, &GitCommandFailed{Args: []string{"tag", "--list"}, Stderr: err.Error()}
	}

	var tags []semver.Tag
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		tagObj, err := a.repo.TagObject(ref.Hash())
		if err != nil {
			// ErrObjectNotFound (or any lookup failure) means this ref
			// points directly at a commit: a lightweight tag. Ignored.
			return nil
		}
		commit, err := tagObj.Commit()
		if err != nil {
			return nil
		}
		sha, err := semver.ParseCommitSha(commit.Hash.String())
		if err != nil {
			return nil
		}
		tag, err := semver.ParseTag(ref.Name().Short(), sha)
		if err != nil {
			// Non-SemVer tag name. Ignored.
			return nil
		}
		tags = append(tags, tag)
		return nil
	})
	if err != nil {
		return nil, &Other{Message: err.Error()}
	}
	return tags, nil
}

// ReachableTags implements Adapter.
func (a *GoGitAdapter) ReachableTags(from semver.CommitSha) ([]semver.Tag, error) {
	all, err := a.ListAllTags()
	if err != nil {
		return nil, err
	}

	fromCommit, err := a.repo.CommitObject(plumbing.NewHash(from.String()))
	if err != nil {
		return nil, &GitCommandFailed{Args: []string{"cat-file", "commit", from.String()}, Stderr: err.Error()}
	}

	var reachable []semver.Tag
	for _, tag := range all {
		if tag.CommitSha.Equal(from) {
			reachable = append(reachable, tag)
			continue
		}
		tagCommit, err := a.repo.CommitObject(plumbing.NewHash(tag.CommitSha.String()))
		if err != nil {
			continue
		}
		isAncestor, err := tagCommit.IsAncestor(fromCommit)
		if err != nil || !isAncestor {
			continue
		}
		reachable = append(reachable, tag)
	}
	return reachable, nil
}

// IsWorkingDirectoryClean implements Adapter.
func (a *GoGitAdapter) IsWorkingDirectoryClean() (bool, error) {
	wt, err := a.repo.Worktree()
	if err != nil {
		return false, &Other{Message: err.Error()}
	}
	status, err := wt.Status()
	if err != nil {
		return false, &GitCommandFailed{Args: []string{"status", "--porcelain"}, Stderr: err.Error()}
	}
	return status.IsClean(), nil
}

// CurrentBranch implements Adapter.
func (a *GoGitAdapter) CurrentBranch() (string, error) {
	head, err := a.repo.Head()
	if err != nil {
		return "", &GitCommandFailed{Args: []string{"symbolic-ref", "--short", "HEAD"}, Stderr: err.Error()}
	}
	if !head.Name().IsBranch() {
		return "none", nil
	}
	return head.Name().Short(), nil
}

// CommitsSince implements Adapter, traversing the full merge graph: every
// commit reachable from to that is not reachable from fromExclusive.
func (a *GoGitAdapter) CommitsSince(to, fromExclusive semver.CommitSha) ([]semver.Commit, error) {
	excluded := map[plumbing.Hash]bool{}
	if !fromExclusive.IsZero() {
		iter, err := a.repo.Log(&git.LogOptions{From: plumbing.NewHash(fromExclusive.String()), Order: git.LogOrderDFS})
		if err != nil {
			return nil, &GitCommandFailed{Args: []string{"log", fromExclusive.String()}, Stderr: err.Error()}
		}
		if err := iter.ForEach(func(c *object.Commit) error {
			excluded[c.Hash] = true
			return nil
		}); err != nil {
			return nil, &Other{Message: err.Error()}
		}
	}

	iter, err := a.repo.Log(&git.LogOptions{From: plumbing.NewHash(to.String()), Order: git.LogOrderDFS})
	if err != nil {
		return nil, &GitCommandFailed{Args: []string{"log", to.String()}, Stderr: err.Error()}
	}

	var commits []semver.Commit
	seen := map[plumbing.Hash]bool{}
	if err := iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] || seen[c.Hash] {
			return nil
		}
		seen[c.Hash] = true
		sha, perr := semver.ParseCommitSha(c.Hash.String())
		if perr != nil {
			return nil
		}
		parents := make([]semver.CommitSha, 0, len(c.ParentHashes))
		for _, ph := range c.ParentHashes {
			parentSha, perr := semver.ParseCommitSha(ph.String())
			if perr != nil {
				continue
			}
			parents = append(parents, parentSha)
		}
		commits = append(commits, semver.Commit{Sha: sha, Message: c.Message, ParentShas: parents})
		return nil
	}); err != nil {
		return nil, &Other{Message: err.Error()}
	}
	return commits, nil
}

// CountCommitsSince implements Adapter, walking only the first-parent chain
// from to down to (excluding) fromExclusive, counting non-merge commits —
// the asymmetry with CommitsSince is intentional (see
// dirpx.dev/verex/internal/resolve's package doc for why metadata wants a
// stable monotonic count while directive scanning wants full coverage).
func (a *GoGitAdapter) CountCommitsSince(to, fromExclusive semver.CommitSha) (int, error) {
	hasStop := !fromExclusive.IsZero()
	stop := plumbing.NewHash(fromExclusive.String())

	count := 0
	current := plumbing.NewHash(to.String())
	for {
		if hasStop && current == stop {
			break
		}
		commit, err := a.repo.CommitObject(current)
		if err != nil {
			return 0, &GitCommandFailed{Args: []string{"rev-list", "--first-parent", to.String()}, Stderr: err.Error()}
		}
		if len(commit.ParentHashes) <= 1 {
			count++
		}
		if len(commit.ParentHashes) == 0 {
			break
		}
		current = commit.ParentHashes[0]
	}
	return count, nil
}

var _ Adapter = (*GoGitAdapter)(nil)
