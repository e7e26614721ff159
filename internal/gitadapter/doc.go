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

// Package gitadapter defines the read-only Git surface the resolver needs —
// revision resolution, tag enumeration, ancestry queries, and working-tree
// status — and a github.com/go-git/go-git/v5-backed implementation of it.
//
// The Adapter never mutates the repository it is pointed at, not even
// transient lock files, and is expected to tolerate being rooted at any
// subdirectory within a repository's working tree.
package gitadapter
