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

import "dirpx.dev/verex/internal/gitadapter"

// defaultShaLength is the abbreviation length used when Config.ShaLength
// is left at its zero value.
const defaultShaLength = 12

// defaultBasisCommit is the revision resolved when Config.BasisCommit is
// left empty.
const defaultBasisCommit = "HEAD"

// Config carries the option set a Resolver consumes, per spec.md §6's
// configuration table.
type Config struct {
	// Repo is the path within the repository to resolve. The Resolver
	// itself does not read or validate it; the adapter it is built over is
	// already opened on the repository.
	Repo string

	// BasisCommit is the revision to resolve. Defaults to "HEAD".
	BasisCommit string

	// PRNumber supplies the pr<N> metadata identifier. Absent (nil) omits
	// it entirely. Negative values are clamped to zero.
	PRNumber *int

	// BranchOverride forces the branch<X> metadata identifier instead of
	// detecting it via Git. Absent (nil) detects.
	BranchOverride *string

	// ShaLength is the abbreviation length for the sha<hex> metadata
	// identifier, in [7, 40]. Defaults to 12.
	ShaLength int

	// Verbose enables LevelVerbose log records.
	Verbose bool
}

// withDefaults returns a copy of c with zero-valued optional fields
// replaced by their documented defaults.
func (c Config) withDefaults() Config {
	if c.BasisCommit == "" {
		c.BasisCommit = defaultBasisCommit
	}
	if c.ShaLength == 0 {
		c.ShaLength = defaultShaLength
	}
	return c
}

// Validate checks the fields a Resolver interprets before touching Git,
// per spec.md §4.7 step 1. A ShaLength outside [7, 40] is the only
// configuration failure: it surfaces as *gitadapter.InvalidShaLength,
// the same error kind Abbreviate itself would report.
func (c Config) Validate() error {
	if c.ShaLength < 7 || c.ShaLength > 40 {
		return &gitadapter.InvalidShaLength{Requested: c.ShaLength}
	}
	return nil
}
