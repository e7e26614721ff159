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
	"dirpx.dev/verex/internal/directive"
	"dirpx.dev/verex/internal/semver"
)

// extractKeywords parses every scanned commit's message independently,
// keyed by commit sha. Parse errors never occur here: directive.ParseKeywords
// has no error return, treating anything it does not recognise as plain
// prose, per spec.md §4.3/§7.
func extractKeywords(commits []semver.Commit) map[semver.CommitSha][]directive.Keyword {
	perCommit := make(map[semver.CommitSha][]directive.Keyword, len(commits))
	for _, c := range commits {
		perCommit[c.Sha] = directive.ParseKeywords(c.Message)
	}
	return perCommit
}

// applyIgnoreDirectives implements spec.md §4.7's ignore-directive step:
// IgnoreSelf removes its own commit's keywords; IgnoreCommits removes
// keywords from any scanned commit whose sha starts with a listed prefix;
// IgnoreRange removes keywords from every scanned commit between two
// sha-matched endpoints (inclusive, order-independent); IgnoreMerged (only
// meaningful on a commit with more than one parent) removes keywords from
// every commit reachable through that merge's non-first-parent ancestry
// that is not also reachable from its first parent. The ignore directives'
// own keywords stay in the result whenever their commit is not ignored.
//
// A sha reference that matches no scanned commit is silently dropped, the
// same "malformed SHA in ignore directive" policy spec.md §7 calls for.
func applyIgnoreDirectives(commits []semver.Commit, perCommit map[semver.CommitSha][]directive.Keyword) []directive.Keyword {
	ignored := make(map[semver.CommitSha]bool)
	bySha := make(map[semver.CommitSha]semver.Commit, len(commits))
	for _, c := range commits {
		bySha[c.Sha] = c
	}

	for _, c := range commits {
		for _, kw := range perCommit[c.Sha] {
			switch kw.Kind {
			case directive.IgnoreSelf:
				ignored[c.Sha] = true
			case directive.IgnoreCommits:
				for _, prefix := range kw.ShaPrefixes {
					markByPrefix(commits, prefix, ignored)
				}
			case directive.IgnoreRange:
				markRange(commits, kw.RangeFrom, kw.RangeTo, ignored)
			case directive.IgnoreMerged:
				if len(c.ParentShas) > 1 {
					markMergedAncestry(c, bySha, ignored)
				}
			}
		}
	}

	var result []directive.Keyword
	for _, c := range commits {
		if ignored[c.Sha] {
			continue
		}
		result = append(result, perCommit[c.Sha]...)
	}
	return result
}

func markByPrefix(commits []semver.Commit, prefix string, ignored map[semver.CommitSha]bool) {
	for _, c := range commits {
		if c.Sha.HasPrefix(prefix) {
			ignored[c.Sha] = true
		}
	}
}

func findByPrefix(commits []semver.Commit, prefix string) (int, bool) {
	for i, c := range commits {
		if c.Sha.HasPrefix(prefix) {
			return i, true
		}
	}
	return 0, false
}

// markRange ignores every commit at an index between the two endpoints'
// matched positions in the scanned stream (which is itself produced by
// commitsSince's merge-graph traversal), inclusive and independent of
// which endpoint was listed first.
func markRange(commits []semver.Commit, from, to string, ignored map[semver.CommitSha]bool) {
	fromIdx, fromOK := findByPrefix(commits, from)
	toIdx, toOK := findByPrefix(commits, to)
	if !fromOK || !toOK {
		return
	}
	lo, hi := fromIdx, toIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi; i++ {
		ignored[commits[i].Sha] = true
	}
}

// markMergedAncestry walks every non-first parent of merge and its
// ancestry (restricted to commits present in the scanned window) marking
// each one ignored. Commits also reachable from the first parent are
// mainline history, not merged-in work, and are left alone.
func markMergedAncestry(merge semver.Commit, bySha map[semver.CommitSha]semver.Commit, ignored map[semver.CommitSha]bool) {
	mainline := make(map[semver.CommitSha]bool)
	stack := []semver.CommitSha{merge.ParentShas[0]}
	for len(stack) > 0 {
		sha := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if mainline[sha] {
			continue
		}
		mainline[sha] = true
		if c, ok := bySha[sha]; ok {
			stack = append(stack, c.ParentShas...)
		}
	}

	queue := append([]semver.CommitSha{}, merge.ParentShas[1:]...)
	visited := make(map[semver.CommitSha]bool)
	for len(queue) > 0 {
		sha := queue[0]
		queue = queue[1:]
		if visited[sha] || mainline[sha] {
			continue
		}
		visited[sha] = true
		ignored[sha] = true
		c, ok := bySha[sha]
		if !ok {
			continue
		}
		queue = append(queue, c.ParentShas...)
	}
}
