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

// Package resolve turns a repository snapshot, reachable via a
// gitadapter.Adapter, into a single semver.Version: either the exact
// tagged version at the basis commit (Concrete mode) or a derived
// "-snapshot+..." build for everything else (Development mode).
//
// The package is organized around three independent pieces that the
// Resolver composes: the target calculator (target.go), which reduces a
// base version plus a stream of directive.Keywords to a target core; the
// metadata builder (metadata.go), which assembles the ordered build-
// metadata identifier list for Development mode; and the orchestrator
// itself (resolver.go), which drives discovery, mode selection, and
// keyword extraction.
//
// countCommitsSince is first-parent and non-merge; commitsSince walks the
// full merge graph. Metadata's commits<N> identifier always comes from the
// former, keyword extraction always from the latter — this asymmetry is
// intentional, not an oversight.
package resolve
