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

// reachableTagState is the portion of discovery the target calculator's
// Rule A-C validation needs: the highest-precedence reachable tag (if
// any) and, failing that, the highest final and highest pre-release tag
// anywhere in the repository.
type reachableTagState struct {
	hasReachable   bool
	reachableFinal bool
	reachableCore  semver.Version

	repoHasFinal     bool
	highestFinalCore semver.Version

	repoHasPreRelease     bool
	highestPreReleaseCore semver.Version
}

// validateTargetCore applies spec.md §4.5 Rules A-C to a candidate
// TargetSet core, reporting whether it survives. Rule D is a Mode-1
// concern handled by the orchestrator, not a target-core predicate; Rule
// E (tie-break) and Rule F (core-only TargetSet) are applied by the
// caller around this function, not inside it.
func validateTargetCore(core semver.Version, state reachableTagState) bool {
	if state.hasReachable {
		if state.reachableFinal {
			return core.Greater(state.reachableCore) // Rule A
		}
		return !core.Less(state.reachableCore) // Rule B
	}
	if state.repoHasFinal {
		return core.Greater(state.highestFinalCore) // Rule C (final)
	}
	if state.repoHasPreRelease {
		return !core.Less(state.highestPreReleaseCore) // Rule C (pre-release)
	}
	return true // no tags anywhere: nothing to validate against
}

// reduceTargetCore implements spec.md §4.5(A): reducing an (already
// ignore-filtered) keyword stream to a target core given a base version
// and the reachable-tag state Rules A-C validate against.
//
// base is the fully resolved base version for this resolution (per
// spec.md §4.7's four-case base-version table); defaultTarget is the
// core reduceTargetCore falls back to when no keyword determines a
// target (step 5, "default behaviour").
func reduceTargetCore(base semver.Version, keywords []directive.Keyword, state reachableTagState, defaultTarget semver.Version) (semver.Version, error) {
	if target, ok := highestValidTargetSet(keywords, state); ok {
		return target, nil
	}
	if hasAbsoluteSet(keywords) {
		return applyAbsoluteSets(base, keywords)
	}
	if target, ok, err := applyRelativeChange(base, keywords); err != nil {
		return semver.Version{}, err
	} else if ok {
		return target, nil
	}
	return defaultTarget, nil
}

// highestValidTargetSet implements step 2: among TargetSet keywords that
// survive Rules A-C, return the numerically highest core (Rule E). A
// TargetSet keyword carries the full parsed version; its pre-release and
// metadata are discarded here by taking Target.Core() (Rule F).
func highestValidTargetSet(keywords []directive.Keyword, state reachableTagState) (semver.Version, bool) {
	var best semver.Version
	found := false
	for _, kw := range keywords {
		if kw.Kind != directive.TargetSet {
			continue
		}
		core := kw.Target.Core()
		if !validateTargetCore(core, state) {
			continue
		}
		if !found || core.Greater(best) {
			best = core
			found = true
		}
	}
	return best, found
}

func hasAbsoluteSet(keywords []directive.Keyword) bool {
	for _, kw := range keywords {
		switch kw.Kind {
		case directive.MajorSet, directive.MinorSet, directive.PatchSet:
			return true
		}
	}
	return false
}

// applyAbsoluteSets implements step 3: construct the target
// component-wise from base, using the highest value set for each
// component present and resetting lower-precedence components whenever a
// higher one is set.
func applyAbsoluteSets(base semver.Version, keywords []directive.Keyword) (semver.Version, error) {
	major := base.Major()
	minor := base.Minor()
	patch := base.Patch()

	majorSet, hasMajor := highestMajorSet(keywords)
	minorSet, hasMinor := highestMinorSet(keywords)
	patchSet, hasPatch := highestPatchSet(keywords)

	if hasMajor {
		major = majorSet
		minor = 0
		patch = 0
	}
	if hasMinor {
		minor = minorSet
		patch = 0
	}
	if hasPatch {
		patch = patchSet
	}

	return semver.NewVersion(major, minor, patch, nil, nil), nil
}

func highestMajorSet(keywords []directive.Keyword) (semver.MajorVersion, bool) {
	var best semver.MajorVersion
	found := false
	for _, kw := range keywords {
		if kw.Kind != directive.MajorSet {
			continue
		}
		if !found || kw.Major > best {
			best = kw.Major
			found = true
		}
	}
	return best, found
}

func highestMinorSet(keywords []directive.Keyword) (semver.MinorVersion, bool) {
	var best semver.MinorVersion
	found := false
	for _, kw := range keywords {
		if kw.Kind != directive.MinorSet {
			continue
		}
		if !found || kw.Minor > best {
			best = kw.Minor
			found = true
		}
	}
	return best, found
}

func highestPatchSet(keywords []directive.Keyword) (semver.PatchNumber, bool) {
	var best semver.PatchNumber
	found := false
	for _, kw := range keywords {
		if kw.Kind != directive.PatchSet {
			continue
		}
		if !found || kw.Patch > best {
			best = kw.Patch
			found = true
		}
	}
	return best, found
}

// applyRelativeChange implements step 4: the highest-precedence relative
// increment (major outranks minor) resets lower components via
// Version.NextMajor/NextMinor. Reports ok=false when neither keyword kind
// is present, so the caller falls through to step 5.
func applyRelativeChange(base semver.Version, keywords []directive.Keyword) (semver.Version, bool, error) {
	hasMajor := false
	hasMinor := false
	for _, kw := range keywords {
		switch kw.Kind {
		case directive.MajorChange:
			hasMajor = true
		case directive.MinorChange:
			hasMinor = true
		}
	}
	switch {
	case hasMajor:
		next, err := base.NextMajor()
		return next, true, err
	case hasMinor:
		next, err := base.NextMinor()
		return next, true, err
	default:
		return semver.Version{}, false, nil
	}
}
