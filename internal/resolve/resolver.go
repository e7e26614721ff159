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
	"dirpx.dev/verex/internal/gitadapter"
	"dirpx.dev/verex/internal/semver"
)

// Resolver turns a Config into a single semver.Version by driving a
// gitadapter.Adapter, per spec.md §4.7's five-step pipeline. A Resolver
// is safe to reuse across calls to Resolve; it holds no per-resolution
// state.
type Resolver struct {
	adapter gitadapter.Adapter
	sink    Sink
}

// NewResolver builds a Resolver over adapter, logging through sink. A nil
// sink is replaced with NopSink.
func NewResolver(adapter gitadapter.Adapter, sink Sink) *Resolver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Resolver{adapter: adapter, sink: sink}
}

func (r *Resolver) logVerbose(cfg Config, message string, context map[string]any) {
	if !cfg.Verbose {
		return
	}
	r.sink.Log(LogRecord{Level: LevelVerbose, Message: message, Context: context})
}

func (r *Resolver) logError(message string, context map[string]any) {
	r.sink.Log(LogRecord{Level: LevelError, Message: message, Context: context})
}

// Resolve runs the full pipeline: validate configuration, discover
// repository state, select the base tag, attempt Concrete (Mode 1)
// emission, and fall back to Development (Mode 2) emission.
func (r *Resolver) Resolve(cfg Config) (semver.Version, error) {
	cfg = cfg.withDefaults()

	// Step 1: validate configuration.
	if err := cfg.Validate(); err != nil {
		r.logError("invalid configuration", map[string]any{"shaLength": cfg.ShaLength})
		return semver.Version{}, err
	}

	// Step 2: discover.
	basisSha, err := r.adapter.ResolveRev(cfg.BasisCommit)
	if err != nil {
		r.logError("failed to resolve basis commit", map[string]any{"basisCommit": cfg.BasisCommit})
		return semver.Version{}, err
	}
	allTags, err := r.adapter.ListAllTags()
	if err != nil {
		r.logError("failed to list tags", nil)
		return semver.Version{}, err
	}
	reachableTags, err := r.adapter.ReachableTags(basisSha)
	if err != nil {
		r.logError("failed to compute reachable tags", map[string]any{"basisSha": basisSha.String()})
		return semver.Version{}, err
	}
	isClean, err := r.adapter.IsWorkingDirectoryClean()
	if err != nil {
		r.logError("failed to inspect working directory", nil)
		return semver.Version{}, err
	}
	branch, err := r.resolveBranch(cfg)
	if err != nil {
		r.logError("failed to resolve current branch", nil)
		return semver.Version{}, err
	}
	r.logVerbose(cfg, "discovery complete", map[string]any{
		"basisSha": basisSha.String(),
		"branch":   branch,
		"isClean":  isClean,
		"tags":     len(allTags),
	})

	// Step 3: select base tag (highest-precedence reachable tag).
	baseTag, hasBaseTag := selectHighestTag(reachableTags)

	// Step 4: Mode 1 (Concrete).
	if concrete, ok := r.tryConcrete(reachableTags, basisSha, isClean); ok {
		r.logVerbose(cfg, "resolved in concrete mode", map[string]any{"version": concrete.String()})
		return concrete, nil
	}

	// Step 5: Mode 2 (Development).
	return r.resolveDevelopment(cfg, basisSha, baseTag, hasBaseTag, allTags, isClean, branch)
}

func (r *Resolver) resolveBranch(cfg Config) (string, error) {
	if cfg.BranchOverride != nil {
		return *cfg.BranchOverride, nil
	}
	return r.adapter.CurrentBranch()
}

// tryConcrete implements Mode 1: if any reachable tag points exactly at
// basisSha and the worktree is clean, its version is emitted verbatim.
// When multiple tags share that commit, a final tag wins over any
// pre-release tag on the same commit (spec.md §4.7 step 4).
//
// Open Question resolution (spec.md §9): this implementation allows a
// pre-release tag at the exact basis commit to qualify for Mode 1 too,
// provided no final tag shares that commit — not only final tags. See
// DESIGN.md for the reasoning.
func (r *Resolver) tryConcrete(reachableTags []semver.Tag, basisSha semver.CommitSha, isClean bool) (semver.Version, bool) {
	if !isClean {
		return semver.Version{}, false
	}

	var finalAtBasis, preReleaseAtBasis *semver.Tag
	for i := range reachableTags {
		tag := reachableTags[i]
		if !tag.CommitSha.Equal(basisSha) {
			continue
		}
		if tag.Version.IsFinal() {
			if finalAtBasis == nil || tag.Version.Greater(finalAtBasis.Version) {
				finalAtBasis = &reachableTags[i]
			}
			continue
		}
		if preReleaseAtBasis == nil || tag.Version.Greater(preReleaseAtBasis.Version) {
			preReleaseAtBasis = &reachableTags[i]
		}
	}

	if finalAtBasis != nil {
		return finalAtBasis.Version, true
	}
	if preReleaseAtBasis != nil {
		return preReleaseAtBasis.Version, true
	}
	return semver.Version{}, false
}

// selectHighestTag returns the numerically highest tag among tags (Rule
// E tie-break), breaking ties between equal versions by the
// lexicographically smaller tag name for determinism.
func selectHighestTag(tags []semver.Tag) (semver.Tag, bool) {
	var best semver.Tag
	found := false
	for _, tag := range tags {
		if !found || tag.Version.Greater(best.Version) ||
			(tag.Version.Equal(best.Version) && tag.Name < best.Name) {
			best = tag
			found = true
		}
	}
	return best, found
}

func highestFinalTag(tags []semver.Tag) (semver.Tag, bool) {
	var best semver.Tag
	found := false
	for _, tag := range tags {
		if !tag.Version.IsFinal() {
			continue
		}
		if !found || tag.Version.Greater(best.Version) {
			best = tag
			found = true
		}
	}
	return best, found
}

func highestPreReleaseTag(tags []semver.Tag) (semver.Tag, bool) {
	var best semver.Tag
	found := false
	for _, tag := range tags {
		if tag.Version.IsFinal() {
			continue
		}
		if !found || tag.Version.Greater(best.Version) {
			best = tag
			found = true
		}
	}
	return best, found
}

// resolveDevelopment implements Mode 2: spec.md §4.7's commit scan,
// keyword extraction and ignore-application, base-version computation,
// target-core reduction, and metadata assembly.
func (r *Resolver) resolveDevelopment(cfg Config, basisSha semver.CommitSha, baseTag semver.Tag, hasBaseTag bool, allTags []semver.Tag, isClean bool, branch string) (semver.Version, error) {
	var fromExclusive semver.CommitSha
	if hasBaseTag {
		fromExclusive = baseTag.CommitSha
	}

	commits, err := r.adapter.CommitsSince(basisSha, fromExclusive)
	if err != nil {
		r.logError("failed to scan commits", map[string]any{"basisSha": basisSha.String()})
		return semver.Version{}, err
	}
	commitCount, err := r.adapter.CountCommitsSince(basisSha, fromExclusive)
	if err != nil {
		r.logError("failed to count commits", map[string]any{"basisSha": basisSha.String()})
		return semver.Version{}, err
	}
	sha, err := r.adapter.Abbreviate(basisSha, cfg.ShaLength)
	if err != nil {
		r.logError("failed to abbreviate basis sha", map[string]any{"shaLength": cfg.ShaLength})
		return semver.Version{}, err
	}

	perCommit := extractKeywords(commits)
	keywords := applyIgnoreDirectives(commits, perCommit)
	r.logVerbose(cfg, "scanned commits for directives", map[string]any{
		"commits":  len(commits),
		"keywords": len(keywords),
	})

	base, defaultTarget, state := computeBaseAndDefault(baseTag, hasBaseTag, allTags)

	targetCore, err := reduceTargetCore(base, keywords, state, defaultTarget)
	if err != nil {
		r.logError("failed to reduce target core", nil)
		return semver.Version{}, err
	}

	metadata, err := buildMetadata(metadataInputs{
		prNumber: cfg.PRNumber,
		branch:   branch,
		commits:  commitCount,
		sha:      sha,
		dirty:    !isClean,
	})
	if err != nil {
		r.logError("failed to build metadata", nil)
		return semver.Version{}, err
	}

	snapshot, err := semver.NewUnversionedPreRelease(semver.Snapshot)
	if err != nil {
		return semver.Version{}, err
	}

	result := semver.NewVersion(targetCore.Major(), targetCore.Minor(), targetCore.Patch(), &snapshot, &metadata)
	r.logVerbose(cfg, "resolved in development mode", map[string]any{"version": result.StringFull()})
	return result, nil
}

// computeBaseAndDefault implements spec.md §4.7's four-case base-version
// table plus the corresponding default-behaviour target (step 5 of
// §4.5(A), read together with §4.7's "enforce default behaviour"
// paragraph), and builds the reachableTagState Rules A-C validate
// TargetSet candidates against.
func computeBaseAndDefault(baseTag semver.Tag, hasBaseTag bool, allTags []semver.Tag) (base semver.Version, defaultTarget semver.Version, state reachableTagState) {
	if hasBaseTag {
		state.hasReachable = true
		state.reachableFinal = baseTag.Version.IsFinal()
		state.reachableCore = baseTag.Version.Core()

		if baseTag.Version.IsFinal() {
			base = baseTag.Version
			next, err := base.NextPatch()
			if err != nil {
				next = base
			}
			return base, next, state
		}
		base = baseTag.Version.Core()
		return base, base, state
	}

	if finalTag, ok := highestFinalTag(allTags); ok {
		state.repoHasFinal = true
		state.highestFinalCore = finalTag.Version.Core()
		nextMajor, err := finalTag.Version.Core().NextMajor()
		if err != nil {
			nextMajor = finalTag.Version.Core()
		}
		return nextMajor, nextMajor, state
	}

	if preTag, ok := highestPreReleaseTag(allTags); ok {
		state.repoHasPreRelease = true
		state.highestPreReleaseCore = preTag.Version.Core()
		core := preTag.Version.Core()
		return core, core, state
	}

	zero := semver.NewVersion(0, 1, 0, nil, nil)
	return zero, zero, state
}
