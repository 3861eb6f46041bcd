package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/puemos/prref/internal/logging"
	"github.com/puemos/prref/internal/refs"
	"github.com/puemos/prref/internal/vcs"
	"github.com/puemos/prref/internal/vcs/github"
	"github.com/puemos/prref/internal/vcs/gitlab"
)

// sampleReference is the built-in input the root command parses. The tool
// takes no reference arguments.
const sampleReference = "puemos/hls-downloader/490"

var (
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "prref",
		Short: "Parse pull request references",
		Long: `Prref parses pull request and merge request references.

The root command runs the reference pattern against a built-in sample and
prints the captured groups one per line. The providers subcommand lists the
supported VCS providers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := refs.Parse(sampleReference)
			slog.Debug("parsed sample reference", "kind", res.Kind)
			if res.Kind == refs.KindNoMatch {
				fmt.Fprintln(cmd.OutOrStdout(), "No match found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Match found!")
			for i, g := range res.Groups {
				value := "none"
				if g.Present {
					value = g.Value
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Group %d: %s\n", i+1, value)
			}

			// Provider resolution is informational; stdout stays reserved
			// for the group listing.
			resolveReference(sampleReference)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose)
	}
	rootCmd.AddCommand(providersCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// buildRegistry creates the provider registry. GitHub registers first so it
// claims bare "owner/repo#N" shorthand; GitLab still wins its own URLs and
// "!" shorthand.
func buildRegistry() *vcs.Registry {
	reg := vcs.NewRegistry()
	reg.Register(github.NewProvider())
	reg.Register(gitlab.NewProvider())
	return reg
}

// resolveReference classifies the reference and resolves it through the
// provider registry, logging the outcome. Resolution failures are logged,
// never fatal.
func resolveReference(reference string) {
	if looksLikeUnifiedDiff(reference) {
		slog.Debug("input looks like a unified diff, skipping provider resolution")
		return
	}

	reg := buildRegistry()
	p, err := reg.Detect(reference)
	if err != nil {
		slog.Debug("no provider claims reference", "reference", reference)
		return
	}

	ref, err := p.ParseRef(reference)
	if err != nil {
		slog.Warn("provider failed to parse reference", "provider", p.ID(), "error", err)
		return
	}

	slog.Info("resolved reference", "provider", p.Name(), "url", ref.URL())
}
