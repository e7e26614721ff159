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

import "fmt"

// GitCommandFailed reports that an underlying Git operation failed. Args
// records the logical invocation (for go-git, a symbolic description since
// there is no literal subprocess argv), ExitCode mirrors a CLI exit code
// where one is meaningful, and Stdout/Stderr capture any textual output
// go-git produced.
type GitCommandFailed struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *GitCommandFailed) Error() string {
	return fmt.Sprintf("verex: git command failed (exit %d): %v: %s", e.ExitCode, e.Args, e.Stderr)
}

// NotAGitRepository reports that Path does not contain a discoverable Git
// repository.
type NotAGitRepository struct {
	Path string
}

func (e *NotAGitRepository) Error() string {
	return "verex: not a git repository: " + e.Path
}

// InvalidShaLength reports that a requested abbreviation length fell
// outside [7, 40].
type InvalidShaLength struct {
	Requested int
}

func (e *InvalidShaLength) Error() string {
	return fmt.Sprintf("verex: invalid sha length %d: must be in [7, 40]", e.Requested)
}

// Other wraps any adapter failure that does not fit the other kinds.
type Other struct {
	Message string
}

func (e *Other) Error() string {
	return "verex: " + e.Message
}
