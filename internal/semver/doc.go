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

// Package semver implements a strictly-typed Semantic Versioning 2.0.0 model
// for verex, extended with a closed pre-release classifier hierarchy (Dev,
// Milestone, Alpha, Beta, ReleaseCandidate, Snapshot) beyond what bare SemVer
// defines.
//
// See https://semver.org/ for the base specification. This package wraps
// github.com/blang/semver/v4 for raw syntactic validation of rendered
// version strings, the same role it plays in the teacher this package is
// descended from, while owning its own typed model, parser, and precedence
// rules so that classifier ordering (not generic lexical pre-release
// comparison) governs precedence.
//
// Values in this package are immutable once constructed: Version, PreRelease,
// Metadata and the nominal numeric types all validate their invariants at
// construction and expose increment/reset operations rather than arbitrary
// arithmetic.
package semver
