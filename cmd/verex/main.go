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

// Command verex resolves an intent-based semantic version for the Git
// repository at (or above) the current directory.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"dirpx.dev/verex/internal/gitadapter"
	"dirpx.dev/verex/internal/resolve"
)

// cliFlags mirrors resolve.Config one-to-one, plus the output format flag
// Config itself has no business knowing about.
type cliFlags struct {
	repo           string
	basisCommit    string
	prNumber       int
	hasPRNumber    bool
	branchOverride string
	shaLength      int
	verbose        bool
	output         string
}

func (f *cliFlags) addFlagsTo(flagset *pflag.FlagSet) {
	flagset.StringVar(&f.repo, "repo", ".", "Path to the repository (or a subdirectory within it) to resolve")
	flagset.StringVar(&f.basisCommit, "basis-commit", "", "Revision to resolve, in place of the default HEAD")
	flagset.IntVar(&f.prNumber, "pr", -1, "Pull request number to record in the snapshot's metadata; negative omits it")
	flagset.StringVar(&f.branchOverride, "branch", "", "Branch name to record in the snapshot's metadata, in place of the detected branch")
	flagset.IntVar(&f.shaLength, "sha-length", 0, "Abbreviated commit sha length recorded in the snapshot's metadata, in [7, 40]; 0 uses the default")
	flagset.BoolVarP(&f.verbose, "verbose", "v", false, "Log each resolution step at debug level")
	flagset.StringVarP(&f.output, "output", "o", string(outputConsole), "Output format: console, raw, json, or yaml")
}

func (f *cliFlags) toConfig() resolve.Config {
	cfg := resolve.Config{
		Repo:        f.repo,
		BasisCommit: f.basisCommit,
		ShaLength:   f.shaLength,
		Verbose:     f.verbose,
	}
	if f.prNumber >= 0 {
		pr := f.prNumber
		cfg.PRNumber = &pr
	}
	if f.branchOverride != "" {
		branch := f.branchOverride
		cfg.BranchOverride = &branch
	}
	return cfg
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "verex [flags]",
		Short: "Resolve an intent-based semantic version from Git history",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			format := outputFormat(flags.output)
			switch format {
			case outputConsole, outputRaw, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown --output value %q: must be console, raw, json, or yaml", flags.output)
			}

			logger := logrus.New()
			if flags.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}

			adapter, err := gitadapter.Open(flags.repo)
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			resolver := resolve.NewResolver(adapter, newLogrusSink(logger))
			version, err := resolver.Resolve(flags.toConfig())
			if err != nil {
				return fmt.Errorf("resolving version: %w", err)
			}

			return writeVersion(cmd.OutOrStdout(), format, version)
		},
	}

	flags.addFlagsTo(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "verex: %v\n", err)
		os.Exit(1)
	}
}
