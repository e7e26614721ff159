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

// Package directive extracts versioning Keywords from raw commit messages.
//
// Recognised forms (case-insensitive, whitespace around ':' tolerated):
//
//	version: ignore
//	version: ignore: <sha>[, <sha>]*
//	version: ignore: <sha>..<sha>
//	version: ignore-merged
//	version: <comp>                  # major|breaking, minor|feature|feat, patch|fix
//	version: <comp>: <N>
//	target: [vV]?<semver>
//	<shorthand>: <non-empty text>    # breaking, major, feat, feature, minor, fix, patch
//
// Matching respects token boundaries: a directive keyword must not be
// immediately preceded by an alphanumeric character or a hyphen. Unrecognised
// text is never an error — it is simply not a directive.
package directive
